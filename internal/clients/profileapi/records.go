package profileapi

// Записи в том виде, в каком их отдаёт апстрим. Для полей, которые приходят
// то в snake_case, то в camelCase, заведены обе версии; сведение к одному
// каноническому виду делает пакет normalize.

type SettingsRecord struct {
	Theme               string   `json:"theme"`
	Layout              string   `json:"layout"`
	ColorPrimary        string   `json:"colorPrimary"`
	ColorPrimarySnake   string   `json:"color_primary"`
	ColorSecondary      string   `json:"colorSecondary"`
	ColorSecondarySnake string   `json:"color_secondary"`
	FontFamily          string   `json:"fontFamily"`
	FontFamilySnake     string   `json:"font_family"`
	IsPublic            FlexBool `json:"isPublic"`
	IsPublicSnake       FlexBool `json:"is_public"`
}

type ProfileRecord struct {
	ID                FlexInt         `json:"id"`
	Username          string          `json:"username"`
	FirstName         string          `json:"firstName"`
	FirstNameSnake    string          `json:"first_name"`
	LastName          string          `json:"lastName"`
	LastNameSnake     string          `json:"last_name"`
	Bio               string          `json:"bio"`
	ProfileImage      string          `json:"profileImage"`
	ProfileImageSnake string          `json:"profile_image"`
	JobTitle          string          `json:"jobTitle"`
	JobTitleSnake     string          `json:"job_title"`
	Location          string          `json:"location"`
	CVURL             string          `json:"cvUrl"`
	CVURLSnake        string          `json:"cv_url"`
	Email             string          `json:"email"`
	Settings          *SettingsRecord `json:"settings"`
}

type SkillRecord struct {
	ID                FlexInt   `json:"id"`
	SkillID           FlexInt   `json:"skillId"`
	SkillIDSnake      FlexInt   `json:"skill_id"`
	SkillName         string    `json:"skillName"`
	SkillNameSnake    string    `json:"skill_name"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Proficiency       FlexInt   `json:"proficiency"`
	YearsExp          FlexFloat `json:"yearsExperience"`
	YearsExpSnake     FlexFloat `json:"years_experience"`
	DisplayOrder      FlexInt   `json:"displayOrder"`
	DisplayOrderSnake FlexInt   `json:"display_order"`
}

// CatalogRecord - запись каталога /skills. Id встречается под тремя именами.
type CatalogRecord struct {
	ID           FlexInt `json:"id"`
	SkillID      FlexInt `json:"skillId"`
	SkillIDSnake FlexInt `json:"skill_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
}

type EducationRecord struct {
	ID                     FlexInt  `json:"id"`
	Institution            string   `json:"institution"`
	Degree                 string   `json:"degree"`
	FieldOfStudy           string   `json:"fieldOfStudy"`
	FieldOfStudySnake      string   `json:"field_of_study"`
	StartDate              string   `json:"startDate"`
	StartDateSnake         string   `json:"start_date"`
	EndDate                string   `json:"endDate"`
	EndDateSnake           string   `json:"end_date"`
	CurrentlyStudying      FlexBool `json:"currentlyStudying"`
	CurrentlyStudyingSnake FlexBool `json:"currently_studying"`
	Location               string   `json:"location"`
	Description            string   `json:"description"`
}

type ExperienceRecord struct {
	ID              FlexInt  `json:"id"`
	Company         string   `json:"company"`
	Position        string   `json:"position"`
	Description     string   `json:"description"`
	StartDate       string   `json:"startDate"`
	StartDateSnake  string   `json:"start_date"`
	EndDate         string   `json:"endDate"`
	EndDateSnake    string   `json:"end_date"`
	CurrentJob      FlexBool `json:"currentJob"`
	CurrentJobSnake FlexBool `json:"current_job"`
	Location        string   `json:"location"`
}

type ProjectRecord struct {
	ID                FlexInt  `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Thumbnail         string   `json:"thumbnail"`
	ProjectURL        string   `json:"projectUrl"`
	ProjectURLSnake   string   `json:"project_url"`
	GithubURL         string   `json:"githubUrl"`
	GithubURLSnake    string   `json:"github_url"`
	Featured          FlexBool `json:"featured"`
	DisplayOrder      FlexInt  `json:"displayOrder"`
	DisplayOrderSnake FlexInt  `json:"display_order"`
}

type SocialLinkRecord struct {
	ID                FlexInt  `json:"id"`
	Platform          string   `json:"platform"`
	URL               string   `json:"url"`
	Icon              string   `json:"icon"`
	IsVisible         FlexBool `json:"isVisible"`
	IsVisibleSnake    FlexBool `json:"is_visible"`
	DisplayOrder      FlexInt  `json:"displayOrder"`
	DisplayOrderSnake FlexInt  `json:"display_order"`
}

type SectionRecord struct {
	ID                FlexInt  `json:"id"`
	SectionType       string   `json:"sectionType"`
	SectionTypeSnake  string   `json:"section_type"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	CustomContent     string   `json:"customContent"`
	IsVisible         FlexBool `json:"isVisible"`
	IsVisibleSnake    FlexBool `json:"is_visible"`
	DisplayOrder      FlexInt  `json:"displayOrder"`
	DisplayOrderSnake FlexInt  `json:"display_order"`
}
