package models

// BlockKind - происхождение блока на странице.
type BlockKind string

const (
	// BlockSection - блок из пользовательской секции.
	BlockSection BlockKind = "section"
	// BlockStandalone - синтезированный блок для данных без секции-обёртки.
	BlockStandalone BlockKind = "standalone"
	// BlockContact - финальный контактный блок, есть всегда.
	BlockContact BlockKind = "contact"
)

// ContentKind - чем заполнено тело блока.
type ContentKind string

const (
	ContentSkills      ContentKind = "skills"
	ContentProjects    ContentKind = "projects"
	ContentEducation   ContentKind = "education"
	ContentExperience  ContentKind = "experience"
	ContentDescription ContentKind = "description"
	ContentAction      ContentKind = "action"
	ContentPlaceholder ContentKind = "placeholder"
	// ContentEmpty - у секции нет ни списка, ни описания: заголовок без тела.
	ContentEmpty ContentKind = "empty"
)

// SkillGroup - навыки одной категории в исходном порядке.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Action - call-to-action контактного блока.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Block - один блок публичной страницы. Заполнено ровно то поле тела,
// на которое указывает Content.
type Block struct {
	Kind        BlockKind   `json:"kind"`
	SectionID   int64       `json:"section_id,omitempty"`
	SectionType SectionType `json:"section_type,omitempty"`
	Title       string      `json:"title"`
	Content     ContentKind `json:"content"`

	Description string       `json:"description,omitempty"`
	Skills      []Skill      `json:"skills,omitempty"`
	SkillGroups []SkillGroup `json:"skill_groups,omitempty"`
	Projects    []Project    `json:"projects,omitempty"`
	Education   []Education  `json:"education,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	Action      *Action      `json:"action,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// Portfolio - собранная публичная страница.
type Portfolio struct {
	Profile     Profile      `json:"profile"`
	SocialLinks []SocialLink `json:"social_links"`
	Blocks      []Block      `json:"blocks"`
}

// ViewState - терминальные состояния публичной страницы.
type ViewState string

const (
	StateLoading     ViewState = "loading"
	StateUnavailable ViewState = "unavailable"
	StateRendered    ViewState = "rendered"
)
