package simulator

import (
	"context"
	"math/rand"
	"time"
)

// for deterministic testing
type Clock interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// for deterministic values
type Rand interface {
	Float64() float64
}

type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type RealRand struct{ *rand.Rand }

func (r RealRand) Float64() float64 { return r.Rand.Float64() }

// NewRand returns the process-wide random source. A zero seed is replaced
// by the current time.
func NewRand(seed int64) RealRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return RealRand{Rand: rand.New(rand.NewSource(seed))}
}
