package handler

// === Requests ===

// ShortenRequest is the POST /api/shorten body. URL is a pointer so a
// missing field and an empty field produce different errors.
type ShortenRequest struct {
	URL *string `json:"url"`
}

// === Responses ===

type ShortenResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

type StatsResponse struct {
	ShortCode string `json:"short_code"`
	URL       string `json:"url"`
	Clicks    int64  `json:"clicks"`
	CreatedAt string `json:"created_at"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
