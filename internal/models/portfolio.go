package models

// Профиль владельца портфолио.
type Profile struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	JobTitle     string    `json:"job_title,omitempty"`
	Location     string    `json:"location,omitempty"`
	CVURL        string    `json:"cv_url,omitempty"`
	Email        string    `json:"email,omitempty"`
	Settings     *Settings `json:"settings,omitempty"`
}

// FullName - "Имя Фамилия" без лишних пробелов; пусто, если не задано ни то, ни другое.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Settings - настройки оформления публичной страницы.
type Settings struct {
	Theme          string `json:"theme"`
	Layout         string `json:"layout"`
	ColorPrimary   string `json:"color_primary"`
	ColorSecondary string `json:"color_secondary"`
	FontFamily     string `json:"font_family"`
	IsPublic       bool   `json:"is_public"`
}

// Skill - связь пользователь-навык с уже разрешённым именем и категорией.
type Skill struct {
	ID              int64   `json:"id,omitempty"`
	SkillID         int64   `json:"skill_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Proficiency     int     `json:"proficiency"`
	YearsExperience float64 `json:"years_experience"`
	DisplayOrder    int     `json:"display_order"`
}

// CatalogSkill - запись общего каталога навыков.
type CatalogSkill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Label - подпись в UI-селекторе: "Name (Category)".
func (c CatalogSkill) Label() string {
	if c.Category == "" {
		return c.Name
	}

	return c.Name + " (" + c.Category + ")"
}

type Education struct {
	ID                int64  `json:"id,omitempty"`
	Institution       string `json:"institution"`
	Degree            string `json:"degree,omitempty"`
	FieldOfStudy      string `json:"field_of_study,omitempty"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	CurrentlyStudying bool   `json:"currently_studying"`
	Location          string `json:"location,omitempty"`
	Description       string `json:"description,omitempty"`
	Period            string `json:"period"`
}

type Experience struct {
	ID          int64  `json:"id,omitempty"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	CurrentJob  bool   `json:"current_job"`
	Location    string `json:"location,omitempty"`
	Period      string `json:"period"`
}

type Project struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	ProjectURL   string `json:"project_url,omitempty"`
	GithubURL    string `json:"github_url,omitempty"`
	Featured     bool   `json:"featured"`
	DisplayOrder int    `json:"display_order"`
}

type SocialLink struct {
	ID           int64    `json:"id,omitempty"`
	Platform     Platform `json:"platform"`
	URL          string   `json:"url"`
	Icon         string   `json:"icon"`
	IsVisible    bool     `json:"is_visible"`
	DisplayOrder int      `json:"display_order"`
}

type PortfolioSection struct {
	ID           int64       `json:"id,omitempty"`
	SectionType  SectionType `json:"section_type"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	IsVisible    bool        `json:"is_visible"`
	DisplayOrder int         `json:"display_order"`
}
