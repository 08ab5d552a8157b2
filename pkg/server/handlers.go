package server

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/pkg/middleware"
	"github.com/vango-dev/formselect/pkg/selectlist"
)

// Result is a completed render.
type Result struct {
	// HTML is the rendered select element.
	HTML template.HTML

	// Location is where the fragment was published, if it was.
	Location string
}

// Render renders req as kind and publishes it when req.PublishKey is set.
func (s *Server) Render(ctx context.Context, kind selectlist.Kind, req *RenderRequest) (Result, error) {
	html, err := s.renderSelect(kind, req)
	if err != nil {
		s.config.Metrics.RecordRenderError(string(kind), errors.CodeOf(err))
		return Result{}, err
	}

	res := Result{HTML: html}
	if req.PublishKey == "" {
		return res, nil
	}
	if s.config.Store == nil {
		return Result{}, errors.New("E082").
			WithSuggestion("Configure publish.dir or publish.s3.bucket in formselect.json")
	}
	loc, err := s.config.Store.Put(ctx, req.PublishKey, []byte(html))
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("published fragment", "kind", string(kind), "location", loc)
	res.Location = loc
	return res, nil
}

func (s *Server) renderSelect(kind selectlist.Kind, req *RenderRequest) (template.HTML, error) {
	switch kind {
	case selectlist.KindDropDown:
		cfg, err := req.DropDown()
		if err != nil {
			return "", err
		}
		return s.renderer.DropDown(cfg)
	case selectlist.KindListBox:
		cfg, err := req.ListBox()
		if err != nil {
			return "", err
		}
		return s.renderer.ListBox(cfg)
	}
	return "", errors.New("E012").WithDetail("unknown kind " + string(kind))
}

func (s *Server) handleRender(kind selectlist.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
		req, err := DecodeRenderRequest(body)
		if err != nil {
			s.config.Metrics.RecordRenderError(string(kind), errors.CodeOf(err))
			s.writeError(w, r, err)
			return
		}

		res, err := s.Render(r.Context(), kind, req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if res.Location != "" {
			w.Header().Set("Content-Location", res.Location)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(res.HTML))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// writeError answers with the JSON payload of err.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Warn("request rejected", "path", r.URL.Path, "error", err)
	}
	middleware.RecordError(r.Context(), err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errors.ToPayload(err))
}

// StatusCode maps err to an HTTP status.
func StatusCode(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.CodeOf(err) {
	case "E080", "E082":
		return http.StatusBadRequest
	case "E081":
		return http.StatusBadGateway
	}
	switch errors.CategoryOf(err) {
	case errors.CategoryInvalidArgument:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
