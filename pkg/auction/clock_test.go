package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingSeconds(t *testing.T) {
	reference := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bidWait := 30 * time.Second

	t.Run("Full Window At Reference", func(t *testing.T) {
		assert.Equal(t, int64(30), RemainingSeconds(reference, reference, bidWait))
	})

	t.Run("Counts Down", func(t *testing.T) {
		now := reference.Add(25 * time.Second)
		assert.Equal(t, int64(5), RemainingSeconds(now, reference, bidWait))
	})

	t.Run("Zero At Boundary", func(t *testing.T) {
		now := reference.Add(30 * time.Second)
		assert.Equal(t, int64(0), RemainingSeconds(now, reference, bidWait))
	})

	t.Run("Negative After Lapse", func(t *testing.T) {
		now := reference.Add(31 * time.Second)
		assert.Equal(t, int64(-1), RemainingSeconds(now, reference, bidWait))
	})

	t.Run("Floors Sub Second Elapsed", func(t *testing.T) {
		now := reference.Add(500 * time.Millisecond)
		assert.Equal(t, int64(30), RemainingSeconds(now, reference, bidWait))
	})

	t.Run("Future Reference Does Not Round Up", func(t *testing.T) {
		// 20.5 seconds before the reference the window holds 50 whole
		// seconds, not 51.
		now := reference.Add(-20500 * time.Millisecond)
		assert.Equal(t, int64(50), RemainingSeconds(now, reference, bidWait))
	})
}

func TestFirstBidReference(t *testing.T) {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bidWait := 60 * time.Second

	reference := FirstBidReference(started, bidWait)
	assert.Equal(t, started.Add(120*time.Second), reference)

	t.Run("Grace Period Before First Bid", func(t *testing.T) {
		// 100 seconds in, an unbid item still has 80 seconds on the clock.
		now := started.Add(100 * time.Second)
		assert.Equal(t, int64(80), RemainingSeconds(now, reference, bidWait))
	})

	t.Run("Unbid Item Eventually Lapses", func(t *testing.T) {
		now := started.Add(181 * time.Second)
		assert.Equal(t, int64(-1), RemainingSeconds(now, reference, bidWait))
	})
}
