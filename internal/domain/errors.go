package domain

import "fmt"

// DuplicateCodeError is returned when a mapping is created with a short
// code that is already taken. The existing mapping is left untouched.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("short code %q already exists", e.Code)
}

// AllocationExhaustedError is returned when no unused short code was
// found within the attempt budget. It signals a capacity problem, not a
// transient failure the caller should retry.
type AllocationExhaustedError struct {
	Attempts int
}

func (e *AllocationExhaustedError) Error() string {
	return fmt.Sprintf("failed to allocate a unique short code after %d attempts", e.Attempts)
}
