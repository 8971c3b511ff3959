package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Stats handles GET /api/stats/{code} requests.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	m, ok := h.service.Stats(r.Context(), code)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Short code not found")
		return
	}

	h.writeJSON(w, http.StatusOK, StatsResponse{
		ShortCode: m.ShortCode,
		URL:       m.OriginalURL,
		Clicks:    m.Clicks,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	})
}
