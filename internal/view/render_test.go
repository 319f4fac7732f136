package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-portfolio/internal/models"
)

func TestRender_States(t *testing.T) {
	tcs := []struct {
		name string
		snap Snapshot
		want string
	}{
		{"loading", Snapshot{State: models.StateLoading}, LoadingMessage + "\n"},
		{"unavailable", Snapshot{State: models.StateUnavailable, Message: UnavailableMessage}, UnavailableMessage + "\n"},
		{"unavailable_no_message", Snapshot{State: models.StateUnavailable}, UnavailableMessage + "\n"},
		{"rendered_nil_portfolio", Snapshot{State: models.StateRendered}, UnavailableMessage + "\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tc.snap))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRender_Portfolio(t *testing.T) {
	p := &models.Portfolio{
		Profile: models.Profile{
			Username:  "alice",
			FirstName: "Alice",
			LastName:  "Doe",
			JobTitle:  "Engineer",
		},
		SocialLinks: []models.SocialLink{
			{Platform: models.Platform("github"), URL: "https://github.com/alice", IsVisible: true},
		},
		Blocks: []models.Block{
			{
				Kind:    models.BlockStandalone,
				Title:   "Skills",
				Content: models.ContentSkills,
				SkillGroups: []models.SkillGroup{{
					Category: "Backend",
					Skills:   []models.Skill{{Name: "Go", Category: "Backend", Proficiency: 4, YearsExperience: 5}},
				}},
			},
			{
				Kind:       models.BlockSection,
				Title:      "Work",
				Content:    models.ContentExperience,
				Experience: []models.Experience{{Company: "Acme", Position: "Dev", Period: "Jan 2020 - Present"}},
			},
			{
				Kind:    models.BlockContact,
				Title:   "Contact",
				Content: models.ContentAction,
				Action:  &models.Action{Label: "Get in Touch", URL: "mailto:alice@example.com"},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Snapshot{Username: "alice", State: models.StateRendered, Portfolio: p}))

	out := buf.String()
	require.Contains(t, out, "Alice Doe\n=========\n")
	require.Contains(t, out, "Engineer\n")
	require.Contains(t, out, "[github] https://github.com/alice")
	require.Contains(t, out, "## Skills\nBackend:\n")
	require.Contains(t, out, "[####.] 5y")
	require.Contains(t, out, "- Dev, Acme (Jan 2020 - Present)")
	require.Contains(t, out, "Get in Touch: mailto:alice@example.com")
}

func TestRender_UsernameWhenNameEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := &models.Portfolio{Profile: models.Profile{Username: "bob"}}

	require.NoError(t, Render(&buf, Snapshot{State: models.StateRendered, Portfolio: p}))
	require.Equal(t, "bob\n===\n", buf.String())
}

func TestProficiencyBar_Clamped(t *testing.T) {
	require.Equal(t, "[#....]", proficiencyBar(0))
	require.Equal(t, "[###..]", proficiencyBar(3))
	require.Equal(t, "[#####]", proficiencyBar(9))
}
