package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/restlight-dev/restlight"
	"github.com/restlight-dev/restlight/internal/config"
	"github.com/restlight-dev/restlight/internal/errors"
	"github.com/restlight-dev/restlight/pkg/middleware"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built-in demo endpoints",
		Long: `Start an HTTP server exposing the demo user service. Routes are
registered once at startup; the server then dispatches GET requests
through match, bind, invoke and infer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to restlight.json")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Listen port")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print response bodies")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

func runServe(cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("service", cfg.Name)
	slog.SetDefault(logger)

	app := restlight.New(
		restlight.WithPretty(cfg.Pretty),
		restlight.WithLogger(logger),
	)
	registerDemoRoutes(app)

	r := chi.NewRouter()
	r.Use(middleware.Metrics())
	r.Use(middleware.OpenTelemetry())
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}
	r.Handle("/*", app.Handler())

	logger.Info("serving", "addr", cfg.Address(), "pretty", cfg.Pretty)
	if err := http.ListenAndServe(cfg.Address(), r); err != nil {
		return errors.New("E100").Wrap(err)
	}
	return nil
}
