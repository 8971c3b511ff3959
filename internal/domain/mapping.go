package domain

import "time"

// Mapping binds a short code to the original URL it was created for.
// ShortCode, OriginalURL and CreatedAt never change after creation;
// Clicks only ever grows, and only through the store.
type Mapping struct {
	ShortCode   string
	OriginalURL string
	Clicks      int64
	CreatedAt   time.Time
}

// Clone creates a deep copy of the mapping. The store hands out clones
// so callers can never mutate store-owned state directly.
func (m *Mapping) Clone() *Mapping {
	return &Mapping{
		ShortCode:   m.ShortCode,
		OriginalURL: m.OriginalURL,
		Clicks:      m.Clicks,
		CreatedAt:   m.CreatedAt,
	}
}
