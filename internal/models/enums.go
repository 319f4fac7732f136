package models

type SectionType string

const (
	SectionAbout      SectionType = "about"
	SectionSkills     SectionType = "skills"
	SectionProjects   SectionType = "projects"
	SectionEducation  SectionType = "education"
	SectionExperience SectionType = "experience"
	SectionContact    SectionType = "contact"
	SectionCustom     SectionType = "custom"
)

// Valid - входит ли тип в известный набор.
func (t SectionType) Valid() bool {
	switch t {
	case SectionAbout, SectionSkills, SectionProjects, SectionEducation,
		SectionExperience, SectionContact, SectionCustom:
		return true
	default:
		return false
	}
}

type Platform string

const (
	PlatformGithub        Platform = "github"
	PlatformLinkedin      Platform = "linkedin"
	PlatformTwitter       Platform = "twitter"
	PlatformInstagram     Platform = "instagram"
	PlatformFacebook      Platform = "facebook"
	PlatformYoutube       Platform = "youtube"
	PlatformTwitch        Platform = "twitch"
	PlatformMedium        Platform = "medium"
	PlatformDev           Platform = "dev"
	PlatformDribbble      Platform = "dribbble"
	PlatformBehance       Platform = "behance"
	PlatformStackoverflow Platform = "stackoverflow"
	PlatformWebsite       Platform = "website"
	PlatformEmail         Platform = "email"
	PlatformOther         Platform = "other"
)

var platforms = map[Platform]struct{}{
	PlatformGithub: {}, PlatformLinkedin: {}, PlatformTwitter: {}, PlatformInstagram: {},
	PlatformFacebook: {}, PlatformYoutube: {}, PlatformTwitch: {}, PlatformMedium: {},
	PlatformDev: {}, PlatformDribbble: {}, PlatformBehance: {}, PlatformStackoverflow: {},
	PlatformWebsite: {}, PlatformEmail: {}, PlatformOther: {},
}

func (p Platform) Valid() bool {
	_, ok := platforms[p]
	return ok
}
