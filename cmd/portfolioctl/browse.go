package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-portfolio/internal/view"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Navigate between portfolios, one username per input line",
	Long: `Reads usernames from stdin and navigates the page to each one as it arrives.
A newer username cancels the previous load; a late result for an old username
is discarded and never printed. Every state change is printed as it happens.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	// onChange вызывается под блокировкой View, поэтому вывод сериализован.
	v := view.New(a.svc, a.log, func(s view.Snapshot) {
		if err := printChange(out, s); err != nil {
			a.log.Warn("print_failed", slog.String("err", err.Error()))
		}
	})
	defer v.Close()

	var (
		last       <-chan struct{}
		lastCancel context.CancelFunc = func() {}
	)
	defer func() { lastCancel() }()

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		username := strings.TrimSpace(sc.Text())
		if username == "" {
			continue
		}

		ctx, cancel := a.deadline(cmd.Context())
		last = v.Navigate(ctx, username)

		// предыдущая загрузка уже отменена Navigate.
		lastCancel()
		lastCancel = cancel
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("portfolioctl.browse: read input: %w", err)
	}

	if last != nil {
		select {
		case <-last:
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}

	return nil
}

func printChange(w io.Writer, s view.Snapshot) error {
	if _, err := fmt.Fprintf(w, "--- %s [%s]\n", s.Username, s.State); err != nil {
		return err
	}

	return printSnapshot(w, s)
}
