// Package store owns all short-code-to-URL mapping state. It is the
// sole authority on code uniqueness and click counts; every operation
// is atomic with respect to every other under a single store-wide lock.
package store

import (
	"sync"

	"url-shortener/internal/domain"
)

// Store is a thread-safe in-memory collection of mappings keyed by
// short code. State lives for the process lifetime only; construct one
// instance at the composition root and pass it down.
type Store struct {
	mu    sync.RWMutex
	data  map[string]*domain.Mapping
	clock domain.Clock
}

// New creates an empty store. The clock stamps CreatedAt on new mappings.
func New(clock domain.Clock) *Store {
	return &Store{
		data:  make(map[string]*domain.Mapping),
		clock: clock,
	}
}

// AddMapping atomically creates a mapping for code if the code is not
// already taken. The existence check and the insert happen under one
// lock acquisition, so two concurrent calls with the same code can
// never both succeed. Returns *domain.DuplicateCodeError if the code
// exists; the stored mapping is left unmodified in that case.
func (s *Store) AddMapping(code, url string) (*domain.Mapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[code]; exists {
		return nil, &domain.DuplicateCodeError{Code: code}
	}

	m := &domain.Mapping{
		ShortCode:   code,
		OriginalURL: url,
		Clicks:      0,
		CreatedAt:   s.clock.Now().UTC(),
	}
	s.data[code] = m

	return m.Clone(), nil
}

// GetMapping returns a copy of the mapping for code, or false if no
// such code exists. Absence is a normal outcome, not an error.
func (s *Store) GetMapping(code string) (*domain.Mapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, exists := s.data[code]
	if !exists {
		return nil, false
	}

	return m.Clone(), true
}

// IncrementClicks atomically adds one click to the mapping for code.
// Returns whether the code existed; unknown codes are a no-op.
func (s *Store) IncrementClicks(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, exists := s.data[code]
	if !exists {
		return false
	}

	m.Clicks++
	return true
}

// CodeExists reports whether code is present in the store. The view is
// the same one AddMapping checks against.
func (s *Store) CodeExists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.data[code]
	return exists
}

// Len returns the number of mappings currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
