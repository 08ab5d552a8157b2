package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

type ctxKey struct{}

func TestOpenTelemetry_WrapsRequestContext(t *testing.T) {
	extractorCalled := false
	mw := OpenTelemetry(
		WithTracerName("test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extractorCalled = true
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	base := context.WithValue(context.Background(), ctxKey{}, "v")
	var seen context.Context
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
		if SpanFromContext(r.Context()) == nil {
			t.Fatal("expected a span in the request context")
		}
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(base))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if !extractorCalled {
		t.Error("attribute extractor was not called")
	}
	if seen == base {
		t.Error("handler should receive a derived context")
	}
	if seen.Value(ctxKey{}) != "v" {
		t.Error("derived context lost parent values")
	}
}

func TestOpenTelemetry_FilterSkipsTracing(t *testing.T) {
	mw := OpenTelemetry(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	var seen context.Context
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != req.Context() {
		t.Error("filtered request should keep its original context")
	}
}

func TestOpenTelemetry_WithChiKeepsRouting(t *testing.T) {
	r := chi.NewRouter()
	r.Use(OpenTelemetry())
	r.Get("/v/{id}", func(w http.ResponseWriter, r *http.Request) {
		RecordError(r.Context(), errors.New("boom"))
		RecordError(r.Context(), nil)
		w.Write([]byte(chi.URLParam(r, "id")))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v/42", nil))
	if got := rec.Body.String(); got != "42" {
		t.Errorf("body = %q, want %q", got, "42")
	}
}
