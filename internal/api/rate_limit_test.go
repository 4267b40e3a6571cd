package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterStoreSweep(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	ls := newLimiterStore(60)
	ls.now = func() time.Time { return now }

	assert.True(t, ls.allow("10.0.0.1"))
	assert.True(t, ls.allow("10.0.0.2"))
	assert.Len(t, ls.limiters, 2)

	// expired but not swept until the interval passes
	now = now.Add(limiterIdleTTL + time.Second)
	ls.nextSweep = now.Add(time.Second)
	assert.True(t, ls.allow("10.0.0.3"))
	assert.Len(t, ls.limiters, 3)

	now = now.Add(time.Second)
	assert.True(t, ls.allow("10.0.0.3"))
	assert.Len(t, ls.limiters, 1)
	assert.Equal(t, now.Add(limiterSweepInterval), ls.nextSweep)
}

func TestLimiterStoreBurst(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	ls := newLimiterStore(2)
	ls.now = func() time.Time { return now }

	assert.True(t, ls.allow("10.0.0.1"))
	assert.False(t, ls.allow("10.0.0.1"))
	assert.True(t, ls.allow("10.0.0.2"))

	now = now.Add(30 * time.Second)
	assert.True(t, ls.allow("10.0.0.1"))
}
