package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	perr "dreammap/internal/platform/errors"
	pnet "dreammap/internal/platform/net"
	phttp "dreammap/internal/platform/net/http"

	"golang.org/x/time/rate"
)

// Limiters keeps one token bucket per key and forgets idle keys
type Limiters struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewLimiters builds a keyed bucket store; rps <= 0 means unlimited
func NewLimiters(rps float64, burst int, idleTTL time.Duration) *Limiters {
	lim := rate.Limit(rps)
	if rps <= 0 {
		lim = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = 15 * time.Minute
	}
	return &Limiters{
		entries: make(map[string]*limiterEntry),
		rps:     lim,
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Get returns the bucket for key, creating it on first use
func (s *Limiters) Get(key string) *rate.Limiter {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.lastSeen = now
		return e.lim
	}
	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Len returns the number of tracked keys
func (s *Limiters) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup drops keys not seen within the idle TTL
func (s *Limiters) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// Janitor runs Cleanup every interval until ctx is done
func (s *Limiters) Janitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// Throttle answers 429 when the caller's bucket is empty. Callers are keyed
// by client ip; requests without one share the "" bucket.
func Throttle(s *Limiters) Middleware {
	return func(next http.Handler) http.Handler {
		if s == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := s.Get(pnet.ClientIP(r.Context()))
			res := lim.Reserve()
			if !res.OK() {
				phttp.RespondError(w, r, perr.TooManyf("too many requests"))
				return
			}
			if d := res.Delay(); d > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.Seconds()))))
				phttp.RespondError(w, r, perr.TooManyf("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
