package normalize

import (
	"strings"

	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/models"
)

// Значения настроек по умолчанию совпадают с дефолтами схемы апстрима.
var DefaultSettings = models.Settings{
	Theme:          "default",
	Layout:         "standard",
	ColorPrimary:   "#007bff",
	ColorSecondary: "#6c757d",
	FontFamily:     "Roboto, sans-serif",
	IsPublic:       true,
}

func Profile(r profileapi.ProfileRecord) models.Profile {
	return models.Profile{
		ID:           r.ID.Or(0),
		Username:     strings.TrimSpace(r.Username),
		FirstName:    firstString(r.FirstNameSnake, r.FirstName),
		LastName:     firstString(r.LastNameSnake, r.LastName),
		Bio:          strings.TrimSpace(r.Bio),
		ProfileImage: firstString(r.ProfileImageSnake, r.ProfileImage),
		JobTitle:     firstString(r.JobTitleSnake, r.JobTitle),
		Location:     strings.TrimSpace(r.Location),
		CVURL:        firstString(r.CVURLSnake, r.CVURL),
		Email:        strings.TrimSpace(r.Email),
		Settings:     Settings(r.Settings),
	}
}

// Settings - nil, если апстрим настроек не прислал; пустые поля добиваются дефолтами.
func Settings(r *profileapi.SettingsRecord) *models.Settings {
	if r == nil {
		return nil
	}

	s := DefaultSettings
	if v := strings.TrimSpace(r.Theme); v != "" {
		s.Theme = v
	}
	if v := strings.TrimSpace(r.Layout); v != "" {
		s.Layout = v
	}
	if v := firstString(r.ColorPrimarySnake, r.ColorPrimary); v != "" {
		s.ColorPrimary = v
	}
	if v := firstString(r.ColorSecondarySnake, r.ColorSecondary); v != "" {
		s.ColorSecondary = v
	}
	if v := firstString(r.FontFamilySnake, r.FontFamily); v != "" {
		s.FontFamily = v
	}
	s.IsPublic = firstBoolOr(true, r.IsPublicSnake, r.IsPublic)

	return &s
}

func Education(recs []profileapi.EducationRecord) []models.Education {
	out := make([]models.Education, 0, len(recs))

	for _, r := range recs {
		e := models.Education{
			ID:                r.ID.Or(0),
			Institution:       strings.TrimSpace(r.Institution),
			Degree:            strings.TrimSpace(r.Degree),
			FieldOfStudy:      firstString(r.FieldOfStudySnake, r.FieldOfStudy),
			StartDate:         firstString(r.StartDateSnake, r.StartDate),
			EndDate:           firstString(r.EndDateSnake, r.EndDate),
			CurrentlyStudying: firstBoolOr(false, r.CurrentlyStudyingSnake, r.CurrentlyStudying),
			Location:          strings.TrimSpace(r.Location),
			Description:       strings.TrimSpace(r.Description),
		}
		e.Period = FormatDateRange(e.StartDate, e.EndDate, e.CurrentlyStudying)

		out = append(out, e)
	}

	return out
}

func Experience(recs []profileapi.ExperienceRecord) []models.Experience {
	out := make([]models.Experience, 0, len(recs))

	for _, r := range recs {
		e := models.Experience{
			ID:          r.ID.Or(0),
			Company:     strings.TrimSpace(r.Company),
			Position:    strings.TrimSpace(r.Position),
			Description: strings.TrimSpace(r.Description),
			StartDate:   firstString(r.StartDateSnake, r.StartDate),
			EndDate:     firstString(r.EndDateSnake, r.EndDate),
			CurrentJob:  firstBoolOr(false, r.CurrentJobSnake, r.CurrentJob),
			Location:    strings.TrimSpace(r.Location),
		}
		e.Period = FormatDateRange(e.StartDate, e.EndDate, e.CurrentJob)

		out = append(out, e)
	}

	return out
}

// Projects - порядок апстрима (порядок создания) сохраняется.
func Projects(recs []profileapi.ProjectRecord) []models.Project {
	out := make([]models.Project, 0, len(recs))

	for _, r := range recs {
		out = append(out, models.Project{
			ID:           r.ID.Or(0),
			Title:        strings.TrimSpace(r.Title),
			Description:  strings.TrimSpace(r.Description),
			Thumbnail:    strings.TrimSpace(r.Thumbnail),
			ProjectURL:   firstString(r.ProjectURLSnake, r.ProjectURL),
			GithubURL:    firstString(r.GithubURLSnake, r.GithubURL),
			Featured:     r.Featured.Or(false),
			DisplayOrder: int(firstIntOr(0, r.DisplayOrder, r.DisplayOrderSnake)),
		})
	}

	return out
}

func SocialLinks(recs []profileapi.SocialLinkRecord) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(recs))

	for _, r := range recs {
		p := Platform(r.Platform)

		icon := strings.TrimSpace(r.Icon)
		if icon == "" {
			icon = PlatformIcon(p)
		}

		out = append(out, models.SocialLink{
			ID:           r.ID.Or(0),
			Platform:     p,
			URL:          strings.TrimSpace(r.URL),
			Icon:         icon,
			IsVisible:    firstBoolOr(true, r.IsVisibleSnake, r.IsVisible),
			DisplayOrder: int(firstIntOr(0, r.DisplayOrder, r.DisplayOrderSnake)),
		})
	}

	return out
}

// Sections: отсутствующий is_visible -> true, display_order -> 0,
// неизвестный тип -> custom.
func Sections(recs []profileapi.SectionRecord) []models.PortfolioSection {
	out := make([]models.PortfolioSection, 0, len(recs))

	for _, r := range recs {
		st := models.SectionType(strings.ToLower(firstString(r.SectionTypeSnake, r.SectionType)))
		if !st.Valid() {
			st = models.SectionCustom
		}

		// Описание отдаётся дословно, без TrimSpace.
		desc := r.Description
		if strings.TrimSpace(desc) == "" {
			desc = r.CustomContent
		}

		out = append(out, models.PortfolioSection{
			ID:           r.ID.Or(0),
			SectionType:  st,
			Title:        strings.TrimSpace(r.Title),
			Description:  desc,
			IsVisible:    firstBoolOr(true, r.IsVisibleSnake, r.IsVisible),
			DisplayOrder: int(firstIntOr(0, r.DisplayOrder, r.DisplayOrderSnake)),
		})
	}

	return out
}

// Platform - в нижний регистр; вне перечисления -> other.
func Platform(s string) models.Platform {
	p := models.Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return models.PlatformOther
	}

	return p
}

var platformIcons = map[models.Platform]string{
	models.PlatformGithub:        "fab fa-github",
	models.PlatformLinkedin:      "fab fa-linkedin",
	models.PlatformTwitter:       "fab fa-twitter",
	models.PlatformInstagram:     "fab fa-instagram",
	models.PlatformFacebook:      "fab fa-facebook",
	models.PlatformYoutube:       "fab fa-youtube",
	models.PlatformTwitch:        "fab fa-twitch",
	models.PlatformMedium:        "fab fa-medium",
	models.PlatformDev:           "fab fa-dev",
	models.PlatformDribbble:      "fab fa-dribbble",
	models.PlatformBehance:       "fab fa-behance",
	models.PlatformStackoverflow: "fab fa-stack-overflow",
	models.PlatformWebsite:       "fas fa-globe",
	models.PlatformEmail:         "fas fa-envelope",
	models.PlatformOther:         "fas fa-link",
}

// PlatformIcon - иконка по умолчанию для платформы.
func PlatformIcon(p models.Platform) string {
	if icon, ok := platformIcons[p]; ok {
		return icon
	}

	return platformIcons[models.PlatformOther]
}
