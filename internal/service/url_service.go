// Package service orchestrates code allocation and mapping storage for
// the HTTP layer.
package service

import (
	"context"
	"errors"
	"fmt"

	"url-shortener/internal/domain"
	"url-shortener/internal/shortcode"
)

// maxInsertRetries bounds the allocate-then-insert loop. A retry is
// only needed when a concurrent request takes the allocated code in
// the window between the existence check and the insert, so collisions
// here are vanishingly rare at 62^6 codes.
const maxInsertRetries = 5

// MappingStore is the storage contract the service depends on. All
// implementations must be safe for concurrent use; see store.Store.
type MappingStore interface {
	AddMapping(code, url string) (*domain.Mapping, error)
	GetMapping(code string) (*domain.Mapping, bool)
	IncrementClicks(code string) bool
	CodeExists(code string) bool
}

// Allocator is the code allocation interface the service depends on.
type Allocator interface {
	Allocate(codes shortcode.CodeChecker) (string, error)
}

// URLService handles URL shortening business logic.
type URLService struct {
	store     MappingStore
	allocator Allocator
}

// New creates a URLService backed by the given store and allocator.
func New(st MappingStore, allocator Allocator) *URLService {
	return &URLService{
		store:     st,
		allocator: allocator,
	}
}

// Shorten allocates an unused short code and stores a mapping for
// longURL. The URL must already be normalized and validated by the
// caller. On a duplicate-code collision (another request inserted the
// same code first) it re-allocates; after maxInsertRetries collisions
// it gives up with *domain.AllocationExhaustedError.
func (s *URLService) Shorten(ctx context.Context, longURL string) (*domain.Mapping, error) {
	for attempt := 0; attempt < maxInsertRetries; attempt++ {
		code, err := s.allocator.Allocate(s.store)
		if err != nil {
			return nil, fmt.Errorf("allocating short code: %w", err)
		}

		m, err := s.store.AddMapping(code, longURL)
		if err == nil {
			return m, nil
		}

		var dup *domain.DuplicateCodeError
		if errors.As(err, &dup) {
			continue // lost the code to a concurrent insert, try a fresh one
		}

		return nil, fmt.Errorf("saving mapping: %w", err)
	}

	return nil, &domain.AllocationExhaustedError{Attempts: maxInsertRetries}
}

// Resolve returns the original URL for code and counts the visit.
// The second return value reports whether the code exists.
func (s *URLService) Resolve(ctx context.Context, code string) (string, bool) {
	m, ok := s.store.GetMapping(code)
	if !ok {
		return "", false
	}

	s.store.IncrementClicks(code)

	return m.OriginalURL, true
}

// Stats returns the full mapping for code, or false if it does not exist.
func (s *URLService) Stats(ctx context.Context, code string) (*domain.Mapping, bool) {
	return s.store.GetMapping(code)
}
