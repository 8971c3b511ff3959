// Package handler implements the HTTP surface of the shortener. URL
// validation and normalization live here, upstream of the store.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"url-shortener/internal/domain"
)

// URLService defines the service interface the handlers depend on.
// This allows testing handlers without a real service implementation.
type URLService interface {
	Shorten(ctx context.Context, longURL string) (*domain.Mapping, error)
	Resolve(ctx context.Context, code string) (string, bool)
	Stats(ctx context.Context, code string) (*domain.Mapping, bool)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	service URLService
	baseURL string
}

// New creates a Handler. baseURL is the public prefix short URLs are
// built from, without a trailing slash.
func New(service URLService, baseURL string) *Handler {
	return &Handler{
		service: service,
		baseURL: baseURL,
	}
}

// NotFound renders the JSON 404 for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.writeError(w, http.StatusNotFound, "Endpoint not found")
}

// MethodNotAllowed renders the JSON 405 for matched routes with the
// wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Error: message})
}
