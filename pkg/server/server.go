package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/internal/publish"
	"github.com/vango-dev/formselect/pkg/middleware"
	"github.com/vango-dev/formselect/pkg/selectlist"
)

// Config holds configuration for the render server.
type Config struct {
	// Address is the host:port to listen on.
	// Default: "localhost:8080".
	Address string

	// IDReplacement replaces characters that are not valid in generated
	// ids. Default: "_".
	IDReplacement string

	// MaxBodyBytes limits request bodies and live messages.
	// Default: 1MB.
	MaxBodyBytes int64

	// ReadTimeout is the maximum duration for reading a request.
	// Default: 10 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration for writing a response.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// Metrics records request and render statistics. Nil disables them.
	Metrics *middleware.Metrics

	// Gatherer is served on MetricsPath. Nil disables the route.
	Gatherer prometheus.Gatherer

	// MetricsPath is where Gatherer is served.
	// Default: "/metrics".
	MetricsPath string

	// Tracing wraps every request in an OpenTelemetry span.
	Tracing bool

	// TracerName is the tracer used when Tracing is set.
	// Default: "formselect".
	TracerName string

	// Store receives fragments from requests that set publishKey.
	// Nil makes such requests fail with E082.
	Store publish.Store

	// CheckOrigin checks the Origin header of live preview connections.
	// Default: same-origin check of the websocket package.
	CheckOrigin func(r *http.Request) bool

	// Logger is the server logger.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Server serves the render API.
type Server struct {
	config     Config
	renderer   *selectlist.Renderer
	router     chi.Router
	upgrader   websocket.Upgrader
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server with the given configuration.
func New(config Config) *Server {
	if config.Address == "" {
		config.Address = "localhost:8080"
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = 1 << 20
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 10 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}
	if config.TracerName == "" {
		config.TracerName = "formselect"
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: logger,
	}

	metrics := config.Metrics
	s.renderer = selectlist.NewRenderer(selectlist.RendererConfig{
		IDReplacement: config.IDReplacement,
		Logger:        logger,
		OnRender: func(info selectlist.RenderInfo) {
			metrics.RecordRender(string(info.Kind), info.Options)
		},
	})
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)
	if s.config.Tracing {
		r.Use(middleware.OpenTelemetry(
			middleware.WithTracerName(s.config.TracerName),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != s.config.MetricsPath
			}),
		))
	}
	r.Use(s.config.Metrics.Middleware)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/dropdown", s.handleRender(selectlist.KindDropDown))
		r.Post("/listbox", s.handleRender(selectlist.KindListBox))
		r.Get("/live", s.handleLive)
	})
	if s.config.Gatherer != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's http.Handler for mounting in other routers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Renderer returns the renderer used by the server.
func (s *Server) Renderer() *selectlist.Renderer {
	return s.renderer
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.New("E061").Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("E061").Wrap(err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
