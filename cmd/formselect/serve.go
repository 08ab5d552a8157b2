package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/vango-dev/formselect/internal/config"
	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/internal/publish"
	"github.com/vango-dev/formselect/pkg/middleware"
	"github.com/vango-dev/formselect/pkg/server"
)

// shutdownGrace is how long serve waits for in-flight requests.
const shutdownGrace = 10 * time.Second

func serveCmd(configPath *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the render server",
		Long: `Start the HTTP render server.

Routes:
  POST /v1/dropdown   render a dropdown
  POST /v1/listbox    render a list box
  GET  /v1/live       WebSocket live preview
  GET  /healthz       liveness check
  GET  /metrics       Prometheus metrics (when metrics.enabled)

Examples:
  formselect serve
  formselect serve --port=9090
  formselect serve -c deploy/formselect.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(*configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := newServer(cmd, cfg)
			if err != nil {
				return err
			}
			info(cmd, "Listening on http://%s", cfg.Address())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from formselect.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from formselect.json)")

	return cmd
}

// newServer wires the render server from cfg.
func newServer(cmd *cobra.Command, cfg *config.Config) (*server.Server, error) {
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	readTimeout, _ := cfg.ReadTimeout()
	writeTimeout, _ := cfg.WriteTimeout()

	sc := server.Config{
		Address:         cfg.Address(),
		IDReplacement:   cfg.Render.IDReplacement,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownGrace,
		Tracing:         cfg.Tracing.Enabled,
		TracerName:      cfg.Tracing.TracerName,
		Logger:          logger,
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts := []middleware.MetricsOption{
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithSubsystem(cfg.Metrics.Subsystem),
			middleware.WithRegistry(reg),
		}
		if len(cfg.Metrics.ConstLabels) > 0 {
			opts = append(opts, middleware.WithConstLabels(cfg.Metrics.ConstLabels))
		}
		if len(cfg.Metrics.Buckets) > 0 {
			opts = append(opts, middleware.WithBuckets(cfg.Metrics.Buckets))
		}
		sc.Metrics = middleware.NewMetrics(opts...)
		sc.Gatherer = reg
		sc.MetricsPath = cfg.Metrics.Path
	}

	store, err := publish.FromConfig(cfg.Publish)
	switch {
	case err == nil:
		sc.Store = store
	case errors.CodeOf(err) == "E082":
		// Publishing is optional for the server.
	default:
		return nil, err
	}
	if sc.Store == nil {
		warn(cmd, "No publish store configured; requests with publishKey will fail")
	}

	return server.New(sc), nil
}
