package middleware

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/phrazzld/unit-converter/internal/api/shared"
	"github.com/phrazzld/unit-converter/internal/observability"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

var errRateLimited = errors.New("rate limit exceeded")

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket. Each client may make capacity
// requests per refill period; the bucket refills completely once the period
// has elapsed since the last refill.
type RateLimiter struct {
	mu          sync.Mutex
	clock       clockwork.Clock
	capacity    int
	refillDur   time.Duration
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewRateLimiter creates a limiter and starts its background cleanup loop.
// Call Stop to release it. A nil clock uses the real clock.
func NewRateLimiter(capacity int, refillDur time.Duration, clock clockwork.Clock) *RateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	rl := &RateLimiter{
		clock:       clock,
		capacity:    capacity,
		refillDur:   refillDur,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := rl.clock.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	for ip, bucket := range rl.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(rl.clients, ip)
		}
	}
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCleanup) })
}

// Allow consumes a token for the client and reports whether the request may proceed.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	bucket, exists := rl.clients[client]

	if !exists {
		if rl.capacity <= 0 {
			return false
		}
		rl.clients[client] = &clientBucket{
			tokens:     rl.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= rl.refillDur {
		bucket.tokens = rl.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// RetryAfter reports how long the client must wait before its bucket refills.
// It is zero when the client has tokens left.
func (rl *RateLimiter) RetryAfter(client string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, exists := rl.clients[client]
	if !exists {
		if rl.capacity <= 0 {
			return rl.refillDur
		}
		return 0
	}
	if bucket.tokens > 0 {
		return 0
	}

	wait := bucket.lastRefill.Add(rl.refillDur).Sub(rl.clock.Now())
	if wait < 0 {
		return 0
	}
	return wait
}

// retryAfterSeconds renders a wait as a Retry-After value, rounded up to at
// least one second.
func retryAfterSeconds(wait time.Duration) string {
	secs := int64(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}

// trackedClients returns the number of clients with a live bucket.
func (rl *RateLimiter) trackedClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// RateLimit rejects requests from clients that exhausted their bucket with
// 429 Too Many Requests. The client is identified by the request's remote
// address, so chi's RealIP middleware should run first. metrics may be nil.
func RateLimit(limiter *RateLimiter, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if !limiter.Allow(client) {
				if metrics != nil {
					metrics.RateLimited.Inc()
				}
				w.Header().Set("Retry-After", retryAfterSeconds(limiter.RetryAfter(client)))
				shared.RespondWithError(w, r, http.StatusTooManyRequests,
					"Too many requests, please slow down", errRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
