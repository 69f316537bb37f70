package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rinilkunhiraman/portfolio-2026/errs"
	"github.com/rinilkunhiraman/portfolio-2026/render"
	"github.com/rinilkunhiraman/portfolio-2026/seo"
)

// Responder centralizes response writing so handlers stay declarative.
type Responder struct {
	logger   zerolog.Logger
	renderer *render.Renderer
}

func NewResponder(logger zerolog.Logger, renderer *render.Renderer) Responder {
	return Responder{logger: logger, renderer: renderer}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// WriteJSON marshals first so a failed encode never truncates a response
// mid-body.
func (r Responder) WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to marshal response body")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// WriteError maps an error to its JSON shape and status code. Unrecognized
// errors become opaque 500s; the detail stays in the logs.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("Unhandled error")
		r.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	if apiErr.StatusCode >= 500 {
		r.logger.Error().Str("error", apiErr.GetFullError()).Msg("Request failed")
	} else {
		r.logger.Warn().Str("error", apiErr.GetFullError()).Msg("Request rejected")
	}

	r.WriteJSON(w, apiErr.StatusCode, errorResponse{Error: apiErr.Error(), Field: apiErr.Field})
}

// WritePage renders a page into a buffer first; a template failure falls
// through to the plain error page instead of emitting half a document.
func (r Responder) WritePage(w http.ResponseWriter, page string, data render.PageData) {
	var buf bytes.Buffer
	if err := r.renderer.Render(&buf, page, data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("Failed to render page")
		r.WritePageError(w, errs.NewInternalError("page rendering failed"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// WritePageError renders the HTML error surface for a failed page request:
// the not-found page for missing content, the generic error page for
// everything else. Unknown slugs land here as 404s, never as 500s.
func (r Responder) WritePageError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	page := "error"

	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		statusCode = apiErr.StatusCode
		if statusCode >= 500 {
			r.logger.Error().Str("error", apiErr.GetFullError()).Msg("Page request failed")
		}
	} else if err != nil {
		r.logger.Error().Err(err).Msg("Page request failed")
	}

	if errs.IsNotFound(err) {
		r.WriteNotFoundPage(w, "Page Not Found")
		return
	}

	data := render.PageData{
		Meta: seo.PageMeta{
			Title:       "Something went wrong",
			Description: "An unexpected error occurred",
		},
	}
	r.writeErrorPage(w, statusCode, page, data)
}

// WriteNotFoundPage renders the not-found page with a page-specific title,
// e.g. "Project Not Found" on the detail route.
func (r Responder) WriteNotFoundPage(w http.ResponseWriter, title string) {
	r.writeErrorPage(w, http.StatusNotFound, "not_found", render.PageData{
		Meta: seo.PageMeta{
			Title:       title,
			Description: "The page you are looking for does not exist",
		},
	})
}

func (r Responder) writeErrorPage(w http.ResponseWriter, statusCode int, page string, data render.PageData) {
	var buf bytes.Buffer
	if renderErr := r.renderer.Render(&buf, page, data); renderErr != nil {
		r.logger.Error().Err(renderErr).Msg("Failed to render error page")
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(buf.Bytes())
}
