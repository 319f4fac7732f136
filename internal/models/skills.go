package models

// AddSkillInput - запрос на привязку навыка к профилю.
// SkillRef приходит как есть из UI: "11", 11 или "React (Frontend)".
type AddSkillInput struct {
	SkillRef        string
	Proficiency     int
	YearsExperience float64
}

// UserSkillWrite - тело, уходящее в апстрим после нормализации и валидации.
type UserSkillWrite struct {
	SkillID         int64   `json:"skillId"         validate:"gt=0"`
	Proficiency     int     `json:"proficiency"     validate:"min=1,max=5"`
	YearsExperience float64 `json:"yearsExperience" validate:"gte=0,lte=80"`
}
