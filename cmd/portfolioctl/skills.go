package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-portfolio/internal/clients/transport"
	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
)

const tokenEnv = "PORTFOLIO_TOKEN"

var (
	addProficiency int
	addYears       float64
	addToken       string
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Skill catalog and profile skills",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the shared skill catalog",
	Args:  cobra.NoArgs,
	RunE:  runSkillsList,
}

var skillsAddCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Attach a skill to the authenticated profile",
	Long: `Attaches a catalog skill to the profile that owns the token.

<skill> is a numeric catalog id ("11") or a catalog label as shown by
"skills list" ("React (Frontend)"). The token is taken from --token or ` + tokenEnv + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsAdd,
}

func init() {
	skillsAddCmd.Flags().IntVar(&addProficiency, "proficiency", normalize.DefaultProficiency, "proficiency level, 1..5")
	skillsAddCmd.Flags().Float64Var(&addYears, "years", 0, "years of experience")
	skillsAddCmd.Flags().StringVar(&addToken, "token", "", "bearer token (default $"+tokenEnv+")")

	skillsCmd.AddCommand(skillsListCmd, skillsAddCmd)
}

func runSkillsList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := a.deadline(cmd.Context())
	defer cancel()

	catalog, err := a.svc.Catalog(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY")
	for _, s := range catalog {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID, s.Name, s.Category)
	}

	return tw.Flush()
}

func runSkillsAdd(cmd *cobra.Command, args []string) error {
	token := addToken
	if token == "" {
		token = os.Getenv(tokenEnv)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := a.deadline(cmd.Context())
	defer cancel()

	if token != "" {
		ctx = transport.WithAuthToken(ctx, token)
	}

	skill, err := a.svc.AddSkill(ctx, models.AddSkillInput{
		SkillRef:        args[0],
		Proficiency:     addProficiency,
		YearsExperience: addYears,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(skill)
	}

	_, err = fmt.Fprintf(out, "added %s (%s), proficiency %d/%d, %g years\n",
		skill.Name, skill.Category, skill.Proficiency, normalize.MaxProficiency, skill.YearsExperience)

	return err
}
