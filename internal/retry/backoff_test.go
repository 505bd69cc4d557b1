package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	b := Fixed(2, 500*time.Millisecond)

	assert.Equal(t, 2, b.MaxAttempts())
	for attempt := 0; attempt < 3; attempt++ {
		assert.Equal(t, 500*time.Millisecond, b.NextDelay(attempt))
	}
}

func TestExponential_GrowsToCap(t *testing.T) {
	b := Exponential(10)
	b.Jitter = 0
	b.Cap = time.Second

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, time.Second},
		{9, time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.NextDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestBackoff_JitterBounds(t *testing.T) {
	low := &Backoff{Delay: time.Second, Jitter: 0.1, random: func() float64 { return 0 }}
	high := &Backoff{Delay: time.Second, Jitter: 0.1, random: func() float64 { return 1 }}

	assert.Equal(t, 900*time.Millisecond, low.NextDelay(0))
	assert.Equal(t, 1100*time.Millisecond, high.NextDelay(0))
}

func TestBackoff_ZeroGrowthIsFixed(t *testing.T) {
	b := &Backoff{Delay: time.Second}
	assert.Equal(t, time.Second, b.NextDelay(5))
}
