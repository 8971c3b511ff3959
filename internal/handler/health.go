package handler

import "net/http"

// Health handles GET / requests.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "URL Shortener API",
	})
}

// APIHealth handles GET /api/health requests.
func (h *Handler) APIHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "URL Shortener API is running",
	})
}
