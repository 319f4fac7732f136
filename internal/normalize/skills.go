// normalize сводит записи profile API к каноническим моделям.
//
// Пакет чистый: никакого I/O, входные данные не меняются. Здесь единственное
// место, где разбираются snake_case/camelCase дубли полей и числа-строки.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/models"
)

// ErrInvalidSkillID - ссылку на навык нельзя свести к положительному целому id.
var ErrInvalidSkillID = errors.New("skill id must be a valid number")

const (
	MinProficiency     = 1
	MaxProficiency     = 5
	DefaultProficiency = 3
	DefaultCategory    = "Other"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Catalog нормализует каталог навыков. Записи без id пропускаются.
func Catalog(recs []profileapi.CatalogRecord) []models.CatalogSkill {
	out := make([]models.CatalogSkill, 0, len(recs))

	for _, r := range recs {
		id, ok := firstInt(r.SkillIDSnake, r.SkillID, r.ID)
		if !ok {
			continue
		}

		out = append(out, models.CatalogSkill{
			ID:       id,
			Name:     strings.TrimSpace(r.Name),
			Category: strings.TrimSpace(r.Category),
		})
	}

	return out
}

// LookupCatalog ищет навык каталога по числовому id.
func LookupCatalog(catalog []models.CatalogSkill, id int64) (models.CatalogSkill, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}

	return models.CatalogSkill{}, false
}

// Skills нормализует список навыков пользователя; порядок сохраняется.
func Skills(recs []profileapi.SkillRecord, catalog []models.CatalogSkill) []models.Skill {
	out := make([]models.Skill, 0, len(recs))
	for _, r := range recs {
		out = append(out, ResolveSkill(r, catalog))
	}

	return out
}

// ResolveSkill определяет имя и категорию навыка:
//  1. встроенное имя записи (skillName/skill_name/name);
//  2. поиск в каталоге по числовому id (skill_id/skillId);
//  3. синтетическая подпись "Skill ID: <id>".
func ResolveSkill(r profileapi.SkillRecord, catalog []models.CatalogSkill) models.Skill {
	skillID, hasID := firstInt(r.SkillIDSnake, r.SkillID)

	s := models.Skill{
		ID:              r.ID.Or(0),
		SkillID:         skillID,
		Name:            firstString(r.SkillName, r.SkillNameSnake, r.Name),
		Category:        strings.TrimSpace(r.Category),
		Proficiency:     proficiency(r.Proficiency),
		YearsExperience: yearsExperience(r.YearsExp, r.YearsExpSnake),
		DisplayOrder:    int(firstIntOr(0, r.DisplayOrder, r.DisplayOrderSnake)),
	}

	if s.Name == "" || s.Category == "" {
		if hasID {
			if c, ok := LookupCatalog(catalog, skillID); ok {
				if s.Name == "" {
					s.Name = c.Name
				}
				if s.Category == "" {
					s.Category = c.Category
				}
			}
		}
	}

	if s.Name == "" {
		s.Name = "Skill ID: " + skillIDText(r, skillID, hasID)
	}

	if s.Category == "" {
		s.Category = DefaultCategory
	}

	return s
}

func skillIDText(r profileapi.SkillRecord, id int64, ok bool) string {
	if ok {
		return strconv.FormatInt(id, 10)
	}

	if raw := firstString(r.SkillIDSnake.Raw, r.SkillID.Raw); raw != "" {
		return raw
	}

	return "unknown"
}

// CoerceSkillID приводит значение из UI-селектора к id навыка:
//   - строка из цифр -> число;
//   - "Name (Category)" или точное имя навыка каталога -> id этого навыка;
//   - всё остальное, а также id <= 0 -> ErrInvalidSkillID.
func CoerceSkillID(value string, catalog []models.CatalogSkill) (int64, error) {
	v := strings.TrimSpace(value)

	if digitsOnly.MatchString(v) {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSkillID, value)
		}

		return id, nil
	}

	if v != "" {
		for _, c := range catalog {
			if c.Label() == v || strings.EqualFold(c.Name, v) {
				if c.ID <= 0 {
					break
				}

				return c.ID, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSkillID, value)
}

// ClampProficiency держит уровень в [1,5].
func ClampProficiency(p int) int {
	switch {
	case p < MinProficiency:
		return MinProficiency
	case p > MaxProficiency:
		return MaxProficiency
	default:
		return p
	}
}

// ProficiencyFraction - доля заполнения индикатора уровня: p/5.
func ProficiencyFraction(p int) float64 {
	return float64(ClampProficiency(p)) / MaxProficiency
}

// proficiency: отсутствующий или нулевой уровень -> 3, иначе clamp.
func proficiency(f profileapi.FlexInt) int {
	if !f.Set || f.Value == 0 {
		return DefaultProficiency
	}

	if f.Value > MaxProficiency {
		return MaxProficiency
	}

	return ClampProficiency(int(f.Value))
}

func yearsExperience(vals ...profileapi.FlexFloat) float64 {
	for _, v := range vals {
		if v.Set {
			if v.Value < 0 {
				return 0
			}

			return v.Value
		}
	}

	return 0
}

// SkillGroups группирует навыки по категориям; категории по алфавиту,
// внутри категории исходный порядок.
func SkillGroups(skills []models.Skill) []models.SkillGroup {
	if len(skills) == 0 {
		return nil
	}

	idx := make(map[string]int)
	var groups []models.SkillGroup

	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = DefaultCategory
		}

		i, ok := idx[cat]
		if !ok {
			i = len(groups)
			idx[cat] = i
			groups = append(groups, models.SkillGroup{Category: cat})
		}

		groups[i].Skills = append(groups[i].Skills, s)
	}

	sortGroups(groups)
	return groups
}
