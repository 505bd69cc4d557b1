package retry

import (
	"math"
	"math/rand"
	"time"
)

// Backoff implements mdlib.BackoffStrategy. The delay before retry n is
// Delay * Growth^n, capped at Cap, then spread by +/- Jitter.
type Backoff struct {
	Attempts int // -1 retries without limit, 0 disables retries
	Delay    time.Duration
	Growth   float64
	Cap      time.Duration
	Jitter   float64 // 0.1 is +/- 10%

	random func() float64
}

// Fixed waits delay before each of attempts retries.
func Fixed(attempts int, delay time.Duration) *Backoff {
	return &Backoff{Attempts: attempts, Delay: delay, Growth: 1}
}

// Exponential starts at 100ms and doubles up to 30s with 10% jitter.
func Exponential(attempts int) *Backoff {
	return &Backoff{
		Attempts: attempts,
		Delay:    100 * time.Millisecond,
		Growth:   2,
		Cap:      30 * time.Second,
		Jitter:   0.1,
	}
}

// NextDelay returns the wait before retry attempt (zero-indexed).
func (b *Backoff) NextDelay(attempt int) time.Duration {
	growth := b.Growth
	if growth <= 0 {
		growth = 1
	}
	d := float64(b.Delay) * math.Pow(growth, float64(attempt))
	if b.Cap > 0 {
		d = math.Min(d, float64(b.Cap))
	}
	if b.Jitter > 0 {
		random := b.random
		if random == nil {
			random = rand.Float64
		}
		d *= 1 + b.Jitter*(2*random()-1)
	}
	return time.Duration(d)
}

// MaxAttempts returns the number of retries allowed.
func (b *Backoff) MaxAttempts() int {
	return b.Attempts
}
