package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Redirect handles GET /{code} requests. A successful redirect counts
// as one click.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		h.writeError(w, http.StatusNotFound, "Short code not found")
		return
	}

	longURL, ok := h.service.Resolve(r.Context(), code)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Short code not found")
		return
	}

	http.Redirect(w, r, longURL, http.StatusFound)
}
