package shortcode

import "url-shortener/internal/domain"

// DefaultMaxAttempts bounds the allocation retry loop.
const DefaultMaxAttempts = 100

// CodeGenerator produces candidate short codes.
// Implementations must be safe for concurrent use.
type CodeGenerator interface {
	Generate() string
}

// CodeChecker is the store-side view the allocator needs: an atomic
// membership test over already-allocated codes.
type CodeChecker interface {
	CodeExists(code string) bool
}

// Allocator produces short codes that are not present in the store at
// the time of checking. It is stateless between calls; each attempt is
// an independent uniform draw.
type Allocator struct {
	gen         CodeGenerator
	maxAttempts int
}

// NewAllocator creates an allocator with the default attempt budget.
func NewAllocator(gen CodeGenerator) *Allocator {
	return NewAllocatorWithBudget(gen, DefaultMaxAttempts)
}

// NewAllocatorWithBudget creates an allocator with a custom attempt
// budget. Non-positive budgets fall back to DefaultMaxAttempts.
func NewAllocatorWithBudget(gen CodeGenerator, maxAttempts int) *Allocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Allocator{
		gen:         gen,
		maxAttempts: maxAttempts,
	}
}

// Allocate returns the first generated candidate not present in codes.
// If every candidate within the budget collides, it returns
// *domain.AllocationExhaustedError rather than a duplicate: exhaustion
// means the code space is saturated and the caller should surface a
// capacity failure.
//
// Allocation and the subsequent insert are separate store interactions.
// A concurrent caller may take the returned code before it is inserted;
// the insert path handles that by retrying on DuplicateCodeError.
func (a *Allocator) Allocate(codes CodeChecker) (string, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		code := a.gen.Generate()
		if !codes.CodeExists(code) {
			return code, nil
		}
	}

	return "", &domain.AllocationExhaustedError{Attempts: a.maxAttempts}
}
