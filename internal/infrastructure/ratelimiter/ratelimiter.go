package ratelimiter

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultSourceKey = "X-RateLimit-Key"

type Limiter interface {
	Allow(sourceKey string) bool
	GetSourceKey(r *http.Request) string
	Remaining(sourceKey string) int
	GetMaxBurst() int
}

type Options struct {
	MaxRatePerSecond int
	MaxBurst         int
	CacheTTL         time.Duration
	SourceHeaderKey  string
}

// RateLimiter is a token bucket per source key. State lives in an in-process
// TTL cache; idle sources expire after CacheTTL.
type RateLimiter struct {
	ratePerMilli    float64
	maxBurst        int
	cache           *ttlCache
	sourceHeaderKey string

	// Per-key locks so refill+take is atomic per source.
	locks sync.Map // map[string]*sync.Mutex
}

func New(opts Options) *RateLimiter {
	if opts.MaxRatePerSecond <= 0 {
		opts.MaxRatePerSecond = 10
	}
	if opts.MaxBurst <= 0 {
		opts.MaxBurst = opts.MaxRatePerSecond * 2
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.SourceHeaderKey == "" {
		opts.SourceHeaderKey = defaultSourceKey
	}

	return &RateLimiter{
		ratePerMilli:    float64(opts.MaxRatePerSecond) / 1000.0,
		maxBurst:        opts.MaxBurst,
		cache:           newTTLCache(opts.CacheTTL),
		sourceHeaderKey: opts.SourceHeaderKey,
	}
}

func (rl *RateLimiter) GetMaxBurst() int {
	return rl.maxBurst
}

// GetSourceKey identifies the caller: configured header first, then the
// remote address without the port.
func (rl *RateLimiter) GetSourceKey(r *http.Request) string {
	if v := r.Header.Get(rl.sourceHeaderKey); v != "" {
		// X-Forwarded-For may carry a chain; the first hop is the client.
		if idx := strings.IndexByte(v, ','); idx > 0 {
			return strings.TrimSpace(v[:idx])
		}
		return v
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndexByte(addr, ':'); idx > 0 {
		return addr[:idx]
	}
	return addr
}

func (rl *RateLimiter) Allow(sourceKey string) bool {
	lock := rl.getLock(sourceKey)
	lock.Lock()
	defer lock.Unlock()

	state := rl.refill(sourceKey, time.Now().UnixMilli())
	if state.tokens < 1 {
		rl.cache.set(sourceKey, state)
		return false
	}

	state.tokens--
	rl.cache.set(sourceKey, state)
	return true
}

func (rl *RateLimiter) Remaining(sourceKey string) int {
	lock := rl.getLock(sourceKey)
	lock.Lock()
	defer lock.Unlock()

	state := rl.refill(sourceKey, time.Now().UnixMilli())
	rl.cache.set(sourceKey, state)
	return int(state.tokens)
}

// tokens is fractional so partial refills accrue across calls instead of
// being lost when lastFill advances.
type bucketState struct {
	tokens   float64
	lastFill int64 // Unix milliseconds
}

func (rl *RateLimiter) getLock(sourceKey string) *sync.Mutex {
	lock, _ := rl.locks.LoadOrStore(sourceKey, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (rl *RateLimiter) refill(sourceKey string, now int64) bucketState {
	state, ok := rl.cache.get(sourceKey)
	if !ok {
		return bucketState{tokens: float64(rl.maxBurst), lastFill: now}
	}

	elapsed := now - state.lastFill
	if elapsed <= 0 {
		return state
	}

	tokens := state.tokens + float64(elapsed)*rl.ratePerMilli
	if tokens > float64(rl.maxBurst) {
		tokens = float64(rl.maxBurst)
	}

	return bucketState{tokens: tokens, lastFill: now}
}
