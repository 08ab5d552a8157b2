// Package middleware provides observability middleware for the render server.
//
// Both middlewares are plain func(http.Handler) http.Handler values and plug
// straight into a chi router with Use.
//
// # Prometheus Metrics
//
// NewMetrics registers the collectors once and returns a handle that serves
// as request middleware and as a sink for render statistics:
//   - formselect_requests_total: Requests by route and status code
//   - formselect_request_duration_seconds: Request duration histogram
//   - formselect_render_errors_total: Failed renders by kind and error code
//   - formselect_options_rendered: Options per rendered select
//
//	reg := prometheus.NewRegistry()
//	m := middleware.NewMetrics(
//	    middleware.WithNamespace("formselect"),
//	    middleware.WithRegistry(reg),
//	)
//	r.Use(m.Middleware)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts one server span per request using the global tracer
// provider. The span is stored in the request context so handlers can
// annotate it:
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("formselect"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
package middleware
