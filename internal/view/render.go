package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
)

// LoadingMessage - текст состояния loading.
const LoadingMessage = "Loading portfolio..."

// Render печатает снимок страницы как plain text.
func Render(w io.Writer, s Snapshot) error {
	bw := bufio.NewWriter(w)

	switch s.State {
	case models.StateRendered:
		if s.Portfolio == nil {
			fmt.Fprintln(bw, UnavailableMessage)
			break
		}
		renderPortfolio(bw, s.Portfolio)
	case models.StateUnavailable:
		msg := s.Message
		if msg == "" {
			msg = UnavailableMessage
		}
		fmt.Fprintln(bw, msg)
	default:
		fmt.Fprintln(bw, LoadingMessage)
	}

	return bw.Flush()
}

func renderPortfolio(w io.Writer, p *models.Portfolio) {
	prof := p.Profile

	name := prof.FullName()
	if name == "" {
		name = prof.Username
	}
	fmt.Fprintln(w, name)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(name))))

	if prof.JobTitle != "" {
		fmt.Fprintln(w, prof.JobTitle)
	}
	if prof.Location != "" {
		fmt.Fprintln(w, prof.Location)
	}
	if prof.Bio != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, prof.Bio)
	}
	if prof.CVURL != "" {
		fmt.Fprintf(w, "CV: %s\n", prof.CVURL)
	}

	for _, l := range p.SocialLinks {
		fmt.Fprintf(w, "  [%s] %s\n", l.Platform, l.URL)
	}

	for _, b := range p.Blocks {
		fmt.Fprintln(w)
		renderBlock(w, b)
	}
}

func renderBlock(w io.Writer, b models.Block) {
	fmt.Fprintf(w, "## %s\n", b.Title)

	switch b.Content {
	case models.ContentSkills:
		groups := b.SkillGroups
		if len(groups) == 0 {
			groups = normalize.SkillGroups(b.Skills)
		}
		for _, g := range groups {
			fmt.Fprintf(w, "%s:\n", g.Category)
			for _, s := range g.Skills {
				fmt.Fprintf(w, "  %-24s %s %s\n", s.Name, proficiencyBar(s.Proficiency), years(s.YearsExperience))
			}
		}
	case models.ContentProjects:
		for _, pr := range b.Projects {
			line := "- " + pr.Title
			if pr.Featured {
				line += " *"
			}
			fmt.Fprintln(w, line)
			if pr.Description != "" {
				fmt.Fprintf(w, "  %s\n", pr.Description)
			}
			for _, u := range []string{pr.ProjectURL, pr.GithubURL} {
				if u != "" {
					fmt.Fprintf(w, "  %s\n", u)
				}
			}
		}
	case models.ContentExperience:
		for _, e := range b.Experience {
			fmt.Fprintf(w, "- %s, %s (%s)\n", e.Position, e.Company, e.Period)
			if e.Description != "" {
				fmt.Fprintf(w, "  %s\n", e.Description)
			}
		}
	case models.ContentEducation:
		for _, e := range b.Education {
			head := e.Institution
			if deg := joinNonEmpty(", ", e.Degree, e.FieldOfStudy); deg != "" {
				head += ": " + deg
			}
			fmt.Fprintf(w, "- %s (%s)\n", head, e.Period)
		}
	case models.ContentDescription:
		fmt.Fprintln(w, b.Description)
	case models.ContentAction:
		if b.Action != nil {
			fmt.Fprintf(w, "%s: %s\n", b.Action.Label, b.Action.URL)
		}
	case models.ContentPlaceholder:
		fmt.Fprintln(w, b.Placeholder)
	}
}

// proficiencyBar: уровень 1..5 как "###.."
func proficiencyBar(p int) string {
	n := normalize.ClampProficiency(p)
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", normalize.MaxProficiency-n) + "]"
}

func years(y float64) string {
	if y <= 0 {
		return ""
	}

	return fmt.Sprintf("%gy", y)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, sep)
}
