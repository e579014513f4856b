// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"sync"
	"time"
)

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for testing.
// It is safe for concurrent use.
type MockClock struct {
	mu        sync.RWMutex
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the time string is invalid (for use in tests only).
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return NewMockClock(t)
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fixedTime
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = t
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
