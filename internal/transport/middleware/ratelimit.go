package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// KeyFunc derives the rate-limit key of a request. An empty key bypasses the limit.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by client IP (the RemoteAddr host).
func ByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ByUser keys requests by authenticated user; anonymous requests fall back to IP.
func ByUser(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	return "ip:" + ByIP(r)
}

// RateLimiter keeps one token bucket per key and scope.
type RateLimiter struct {
	limiters sync.Map // map[string]*limiterEntry
	scopes   atomic.Int64
	stop     chan struct{}
	stopOnce sync.Once
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit rate-limits requests to maxPerMinute per client IP.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return rl.LimitBy(maxPerMinute, ByIP)
}

// LimitBy rate-limits requests to maxPerMinute per key. Each call creates an
// independent scope, so two limited routes never share buckets.
func (rl *RateLimiter) LimitBy(maxPerMinute int, key KeyFunc) Middleware {
	scope := rl.scopes.Add(1)
	every := rate.Every(time.Minute / time.Duration(max(maxPerMinute, 1)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			lim := rl.get(fmt.Sprintf("%d|%s", scope, k), every, maxPerMinute)
			res := lim.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) get(key string, every rate.Limit, burst int) *rate.Limiter {
	val, _ := rl.limiters.LoadOrStore(key, &limiterEntry{limiter: rate.NewLimiter(every, max(burst, 1))})
	e := val.(*limiterEntry)
	e.lastSeen.Store(time.Now().UnixNano())
	return e.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute).UnixNano()
			rl.limiters.Range(func(key, value any) bool {
				if value.(*limiterEntry).lastSeen.Load() < cutoff {
					rl.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
