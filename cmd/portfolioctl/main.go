// portfolioctl - консольный клиент публичных портфолио: собирает страницу
// тем же сервисным слоем, что и portfolio-gateway, и печатает её в терминал.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-portfolio/internal/cache"
	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/config"
	"github.com/pribylovaa/go-portfolio/internal/service"
	logctx "github.com/pribylovaa/go-portfolio/pkg/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var (
	configPath string
	timeout    time.Duration
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Assemble and inspect public portfolios from the profile API",
	Long: `portfolioctl assembles public portfolio pages from the upstream profile API
using the same pipeline as portfolio-gateway and prints them to the terminal.

Configuration is read from --config, CONFIG_PATH, ./local.yaml or the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "overall deadline per request (default: timeouts.service)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(showCmd, browseCmd, skillsCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}

// app - зависимости одной команды.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	svc   *service.Service
	store cache.Store
}

func newApp() (*app, error) {
	const op = "portfolioctl.newApp"

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := setupLogger(cfg.Env)

	api, err := profileapi.NewFromConfig(*cfg, log, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &app{
		cfg:   cfg,
		log:   log,
		svc:   service.New(api, store, nil, cfg),
		store: store,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("cache_close_failed", slog.String("err", err.Error()))
	}
}

// deadline: --timeout, иначе timeouts.service из конфига. Логгер команды
// кладётся в контекст для сервисного слоя.
func (a *app) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = logctx.Into(ctx, a.log)

	d := timeout
	if d <= 0 {
		d = a.cfg.Timeouts.Service
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}

// setupLogger пишет в stderr, чтобы stdout оставался для вывода команды.
func setupLogger(env string) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	switch env {
	case envDev, envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
}
