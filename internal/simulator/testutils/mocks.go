package testutils

import (
	"context"
	"time"
)

// MockRand returns the values in Vals in order, repeating the last one.
type MockRand struct {
	Vals  []float64
	calls int
}

func (m *MockRand) Float64() float64 {
	if len(m.Vals) == 0 {
		return 0.5
	}
	i := m.calls
	if i >= len(m.Vals) {
		i = len(m.Vals) - 1
	}
	m.calls++
	return m.Vals[i]
}

// MockClock records sleeps without blocking. Sleeps whose 1-based index is
// listed in FailOn return Err.
type MockClock struct {
	Slept  []time.Duration
	FailOn map[int]bool
	Err    error
}

func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	m.Slept = append(m.Slept, d)
	if m.FailOn[len(m.Slept)] {
		if m.Err != nil {
			return m.Err
		}
		return context.Canceled
	}
	return nil
}
