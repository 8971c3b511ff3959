package domain

import "time"

// Clock abstracts time so that mapping creation timestamps can be
// tested deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time in UTC.
// Mapping timestamps are always UTC.
type RealClock struct{}

// Now returns the current system time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock implements Clock with controllable time for testing.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock set to the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mock's current time.
func (c *MockClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by the given duration.
func (c *MockClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
