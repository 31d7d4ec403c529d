package auth

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket rate limiter per key. Keys are
// client names or, for anonymous callers, IP addresses.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	now     func() time.Time
}

type tokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	rpm        int
	dynamic    bool // created by AllowRate, may be pruned
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		now:     time.Now,
	}
}

func newBucket(rpm int, now time.Time) *tokenBucket {
	// Allow a burst of ~10 seconds worth, minimum 10 requests
	maxTokens := max(float64(rpm)/6, 10)
	return &tokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: float64(rpm) / 60.0,
		lastRefill: now,
		rpm:        rpm,
	}
}

// EnsureLimit sets the rate limit for a key in requests per minute. An
// existing bucket with the same rate keeps its tokens.
func (r *RateLimiter) EnsureLimit(key string, rpm int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.buckets[key]; ok && b.rpm == rpm && !b.dynamic {
		return
	}
	r.buckets[key] = newBucket(rpm, r.now())
}

// Remove drops the limit for a key.
func (r *RateLimiter) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.buckets, key)
}

// Allow checks if a request is allowed for the key
// Keys without a configured limit are always allowed.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, exists := r.buckets[key]
	if !exists {
		return true
	}
	return r.take(bucket)
}

// AllowRate is Allow for keys that are not known in advance. The bucket is
// created with rpm on first use. rpm <= 0 means unlimited.
func (r *RateLimiter) AllowRate(key string, rpm int) bool {
	if rpm <= 0 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, exists := r.buckets[key]
	if !exists {
		bucket = newBucket(rpm, r.now())
		bucket.dynamic = true
		r.buckets[key] = bucket
	}
	return r.take(bucket)
}

func (r *RateLimiter) take(bucket *tokenBucket) bool {
	now := r.now()
	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens = min(bucket.tokens+elapsed*bucket.refillRate, bucket.maxTokens)
	bucket.lastRefill = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

// GetRemainingTokens returns the current token count for a key (for metrics)
func (r *RateLimiter) GetRemainingTokens(key string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, exists := r.buckets[key]
	if !exists {
		return -1 // No limit
	}

	return bucket.tokens
}

// Prune removes AllowRate buckets that have been idle for longer than idle
// and have refilled completely. It returns the number removed.
func (r *RateLimiter) Prune(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for key, b := range r.buckets {
		if !b.dynamic || now.Sub(b.lastRefill) < idle {
			continue
		}
		if b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate >= b.maxTokens {
			delete(r.buckets, key)
			removed++
		}
	}
	return removed
}
