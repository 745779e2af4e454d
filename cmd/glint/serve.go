package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glint-go/glint"
	"github.com/glint-go/glint/internal/config"
	"github.com/glint-go/glint/internal/demo"
	"github.com/glint-go/glint/internal/errors"
	"github.com/glint-go/glint/pkg/features/charts"
	"github.com/glint-go/glint/pkg/middleware"
	"github.com/glint-go/glint/pkg/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo dashboard",
		Long: `Start the Glint server with the built-in CRM dashboard.

Configuration is read from glint.json in the working directory when
present; flags override it. Without a config file the server uses
defaults and listens on :8080.

Examples:
  glint serve
  glint serve --addr=:3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from glint.json)")

	return cmd
}

func runServe(addr string) error {
	cfg, err := loadOrDefault()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Address = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.NewLogger(os.Stderr)
	app := buildApp(cfg, logger)
	app.HandlePages(demo.Pages())

	name := cfg.Name
	if name == "" {
		name = "demo dashboard"
	}
	printBanner()
	info("serving %s on %s", name, cfg.Server.Address)
	info("live endpoint %s", server.LivePath)
	if cfg.Metrics.Enabled {
		info("metrics at /metrics")
	}
	fmt.Println()

	if err := app.Run(); err != nil {
		return errors.New("E220").Wrap(err)
	}
	return nil
}

// loadOrDefault reads glint.json from the working directory or a
// parent, falling back to defaults when no project config exists.
func loadOrDefault() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := config.FindProjectRoot(wd)
	if err != nil {
		return config.New(), nil
	}
	return config.Load(root)
}

// buildApp assembles the engine configuration from the project config.
func buildApp(cfg *config.Config, logger *slog.Logger) *glint.App {
	sess := server.DefaultSessionConfig()
	sess.ReadTimeout = cfg.ReadTimeout()
	sess.WriteTimeout = cfg.WriteTimeout()
	sess.HeartbeatInterval = cfg.Heartbeat()

	gcfg := glint.Config{
		Language:     cfg.Language(),
		DateLayout:   cfg.Format.DateLayout,
		SearchWindow: cfg.SearchWindow(),
		OnQuery:      demo.FilterRows,
		Breakpoint:   cfg.Interact.Breakpoint,
		AutoHide:     cfg.AutoHideDelay(),
		Charts: map[string]charts.Renderer{
			demo.ChartName: demo.RevenueChart(),
		},
		Server: &server.Config{
			Address:         cfg.Server.Address,
			Session:         sess,
			ShutdownTimeout: cfg.ShutdownTimeout(),
		},
		Logger: logger,
	}
	if cfg.Metrics.Enabled {
		gcfg.Metrics = middleware.NewMetrics(middleware.WithNamespace(cfg.Metrics.Namespace))
	}
	return glint.New(gcfg)
}
