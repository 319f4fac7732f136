package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/view"
)

var errUnavailable = errors.New("portfolio unavailable")

var showCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Assemble and print one public portfolio",
	Long: `Fetches every public resource of the user in parallel, normalizes them and
prints the assembled page. Exits non-zero when the portfolio is unavailable.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := a.deadline(cmd.Context())
	defer cancel()

	v := view.New(a.svc, a.log, nil)
	defer v.Close()

	<-v.Navigate(ctx, strings.TrimSpace(args[0]))

	snap := v.State()
	if err := printSnapshot(cmd.OutOrStdout(), snap); err != nil {
		return err
	}

	if snap.State != models.StateRendered {
		return fmt.Errorf("%s: %w", snap.Username, errUnavailable)
	}

	return nil
}

// snapshotJSON повторяет тело ответа GET /portfolios/{username}.
type snapshotJSON struct {
	Username  string            `json:"username"`
	State     models.ViewState  `json:"state"`
	Message   string            `json:"message,omitempty"`
	Portfolio *models.Portfolio `json:"portfolio,omitempty"`
}

func printSnapshot(w io.Writer, s view.Snapshot) error {
	if !jsonOutput {
		return view.Render(w, s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(snapshotJSON{
		Username:  s.Username,
		State:     s.State,
		Message:   s.Message,
		Portfolio: s.Portfolio,
	})
}
