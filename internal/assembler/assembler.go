// assembler собирает упорядоченный список блоков публичной страницы из
// нормализованных данных. Детерминирован, входы не меняет, ошибок не возвращает.
package assembler

import (
	"slices"
	"sort"

	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
)

const (
	SkillsTitle   = "Skills & Expertise"
	ProjectsTitle = "Projects"
	ContactTitle  = "Contact"

	ContactLabel       = "Get in Touch"
	ContactPlaceholder = "Contact information not available"
)

// Input - всё, что нужно для сборки; profile задаётся отдельно в Portfolio.
type Input struct {
	Sections    []models.PortfolioSection
	Skills      []models.Skill
	Projects    []models.Project
	Education   []models.Education
	Experience  []models.Experience
	SocialLinks []models.SocialLink
}

// Portfolio собирает страницу целиком: профиль, видимые ссылки, блоки.
func Portfolio(profile models.Profile, in Input) models.Portfolio {
	return models.Portfolio{
		Profile:     profile,
		SocialLinks: VisibleLinks(in.SocialLinks),
		Blocks:      Assemble(in),
	}
}

// Assemble:
//  1. standalone-блоки "Skills & Expertise" и "Projects", если данные есть, а секции
//     такого типа нет среди всех (включая скрытые) секций;
//  2. видимые секции, стабильно отсортированные по display_order, с телом по типу;
//  3. контактный блок - всегда последний.
func Assemble(in Input) []models.Block {
	blocks := make([]models.Block, 0, len(in.Sections)+3)

	if len(in.Skills) > 0 && !hasType(in.Sections, models.SectionSkills) {
		blocks = append(blocks, skillsBlock(models.Block{
			Kind:        models.BlockStandalone,
			SectionType: models.SectionSkills,
			Title:       SkillsTitle,
		}, in.Skills))
	}

	if len(in.Projects) > 0 && !hasType(in.Sections, models.SectionProjects) {
		blocks = append(blocks, models.Block{
			Kind:        models.BlockStandalone,
			SectionType: models.SectionProjects,
			Title:       ProjectsTitle,
			Content:     models.ContentProjects,
			Projects:    slices.Clone(in.Projects),
		})
	}

	for _, s := range OrderedSections(in.Sections) {
		blocks = append(blocks, sectionBlock(s, in))
	}

	return append(blocks, ContactBlock(in.SocialLinks))
}

// OrderedSections - видимые секции в стабильном порядке display_order.
// Возвращает новый срез; вход не трогается.
func OrderedSections(sections []models.PortfolioSection) []models.PortfolioSection {
	out := make([]models.PortfolioSection, 0, len(sections))
	for _, s := range sections {
		if s.IsVisible {
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})

	return out
}

// ContactBlock: первая ссылка с platform=email даёт call-to-action, иначе заглушка.
// Видимость ссылки не учитывается.
func ContactBlock(links []models.SocialLink) models.Block {
	b := models.Block{
		Kind:        models.BlockContact,
		SectionType: models.SectionContact,
		Title:       ContactTitle,
	}

	for _, l := range links {
		if l.Platform == models.PlatformEmail && l.URL != "" {
			b.Content = models.ContentAction
			b.Action = &models.Action{Label: ContactLabel, URL: l.URL}
			return b
		}
	}

	b.Content = models.ContentPlaceholder
	b.Placeholder = ContactPlaceholder
	return b
}

// VisibleLinks - видимые ссылки для шапки, стабильно по display_order.
func VisibleLinks(links []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(links))
	for _, l := range links {
		if l.IsVisible {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})

	return out
}

func hasType(sections []models.PortfolioSection, t models.SectionType) bool {
	for _, s := range sections {
		if s.SectionType == t {
			return true
		}
	}

	return false
}

func sectionBlock(s models.PortfolioSection, in Input) models.Block {
	b := models.Block{
		Kind:        models.BlockSection,
		SectionID:   s.ID,
		SectionType: s.SectionType,
		Title:       s.Title,
	}

	// Непустой список вытесняет описание.
	switch s.SectionType {
	case models.SectionSkills:
		if len(in.Skills) > 0 {
			return skillsBlock(b, in.Skills)
		}
	case models.SectionProjects:
		if len(in.Projects) > 0 {
			b.Content = models.ContentProjects
			b.Projects = slices.Clone(in.Projects)
			return b
		}
	case models.SectionEducation:
		if len(in.Education) > 0 {
			b.Content = models.ContentEducation
			b.Education = slices.Clone(in.Education)
			return b
		}
	case models.SectionExperience:
		if len(in.Experience) > 0 {
			b.Content = models.ContentExperience
			b.Experience = slices.Clone(in.Experience)
			return b
		}
	}

	return describe(b, s.Description)
}

func skillsBlock(b models.Block, skills []models.Skill) models.Block {
	b.Content = models.ContentSkills
	b.Skills = slices.Clone(skills)
	b.SkillGroups = normalize.SkillGroups(skills)
	return b
}

func describe(b models.Block, desc string) models.Block {
	if desc == "" {
		b.Content = models.ContentEmpty
		return b
	}

	b.Content = models.ContentDescription
	b.Description = desc
	return b
}
