package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	apierrors "github.com/pribylovaa/go-portfolio/internal/errors"
	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
)

// catalogItem - запись каталога для UI-селектора.
type catalogItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

type catalogResponse struct {
	Skills []catalogItem `json:"skills"`
}

func (h *Handlers) ListSkills(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Catalog(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := catalogResponse{Skills: make([]catalogItem, 0, len(c))}
	for _, s := range c {
		out.Skills = append(out.Skills, catalogItem{ID: s.ID, Name: s.Name, Category: s.Category, Label: s.Label()})
	}

	writeJSON(w, http.StatusOK, out)
}

// addSkillRequest - тело POST /profile/skills. id навыка приходит числом,
// строкой из цифр или подписью каталога; имена полей в обоих стилях.
type addSkillRequest struct {
	SkillID       profileapi.FlexInt   `json:"skill_id"`
	SkillIDCamel  profileapi.FlexInt   `json:"skillId"`
	Proficiency   profileapi.FlexInt   `json:"proficiency"`
	YearsExp      profileapi.FlexFloat `json:"years_experience"`
	YearsExpCamel profileapi.FlexFloat `json:"yearsExperience"`
}

func (req addSkillRequest) input() (models.AddSkillInput, error) {
	ref := req.SkillID.Raw
	if ref == "" {
		ref = req.SkillIDCamel.Raw
	}

	// Нецелый proficiency (3.5, "high") не подменяем значением по умолчанию.
	if !req.Proficiency.Set && req.Proficiency.Raw != "" {
		return models.AddSkillInput{}, errInvalidArgument("proficiency")
	}

	years := req.YearsExp
	if !years.Set {
		years = req.YearsExpCamel
	}

	return models.AddSkillInput{
		SkillRef:        ref,
		Proficiency:     int(req.Proficiency.Value),
		YearsExperience: years.Value,
	}, nil
}

// skillResponse - привязанный навык и доля заполнения шкалы уровня (p/5).
type skillResponse struct {
	models.Skill
	ProficiencyFraction float64 `json:"proficiency_fraction"`
}

func (h *Handlers) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req addSkillRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("body"))
		return
	}

	in, err := req.input()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	skill, err := h.Service.AddSkill(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, skillResponse{
		Skill:               *skill,
		ProficiencyFraction: normalize.ProficiencyFraction(skill.Proficiency),
	})
}
