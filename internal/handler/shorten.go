package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"url-shortener/internal/domain"
)

// Shorten handles POST /api/shorten requests.
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	var req ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON or Content-Type must be application/json")
		return
	}

	if req.URL == nil {
		h.writeError(w, http.StatusBadRequest, "URL is required in request body")
		return
	}

	rawURL := strings.TrimSpace(*req.URL)
	if rawURL == "" {
		h.writeError(w, http.StatusBadRequest, "URL cannot be empty")
		return
	}

	normalized := normalizeURL(rawURL)
	if err := validateURL(normalized); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Shorten(r.Context(), normalized)
	if err != nil {
		var exhausted *domain.AllocationExhaustedError
		if errors.As(err, &exhausted) {
			h.writeError(w, http.StatusServiceUnavailable, "Failed to generate unique short code")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusCreated, ShortenResponse{
		ShortCode: m.ShortCode,
		ShortURL:  h.baseURL + "/" + m.ShortCode,
	})
}
