package ratelimiter

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowRespectsBurst(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         3,
		CacheTTL:         time.Minute,
	})

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("client-a"), "request %d within burst should pass", i)
	}
	assert.False(t, rl.Allow("client-a"), "request beyond burst should be rejected")

	// A different source has its own bucket.
	assert.True(t, rl.Allow("client-b"))
}

func TestRemaining(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         5,
		CacheTTL:         time.Minute,
	})

	assert.Equal(t, 5, rl.Remaining("client-a"))

	rl.Allow("client-a")
	rl.Allow("client-a")

	assert.Equal(t, 3, rl.Remaining("client-a"))
}

func TestGetSourceKey(t *testing.T) {
	rl := New(Options{SourceHeaderKey: "X-Forwarded-For"})

	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.7:52311"
	assert.Equal(t, "10.0.0.7", rl.GetSourceKey(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", rl.GetSourceKey(r))
}

func TestRefillAccruesFractionalTokens(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         5,
		CacheTTL:         time.Minute,
	})

	// An empty bucket polled twice at half the refill interval must still
	// earn a full token; the first poll's half token cannot be dropped.
	rl.cache.set("client-a", bucketState{tokens: 0, lastFill: 0})

	state := rl.refill("client-a", 500)
	assert.InDelta(t, 0.5, state.tokens, 1e-9)
	rl.cache.set("client-a", state)

	state = rl.refill("client-a", 1000)
	assert.InDelta(t, 1.0, state.tokens, 1e-9)
}

func TestTokensRefill(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1000,
		MaxBurst:         2,
		CacheTTL:         time.Minute,
	})

	assert.True(t, rl.Allow("client-a"))
	assert.True(t, rl.Allow("client-a"))
	assert.False(t, rl.Allow("client-a"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("client-a"), "bucket should refill over time")
}
