package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 5 * time.Minute
	limiterSweepInterval = time.Minute
)

type ipLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// limiterStore hands out one token bucket per client IP and forgets IPs
// that stayed idle for limiterIdleTTL. Idle IPs are swept at most once per
// limiterSweepInterval.
type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	nextSweep time.Time
}

func newLimiterStore(perMinute int) *limiterStore {
	perMinute = max(perMinute, 1)
	return &limiterStore{
		limiters: make(map[string]*ipLimiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(perMinute/2, 1),
		now:      time.Now,
	}
}

func (ls *limiterStore) allow(ip string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	now := ls.now()
	if !now.Before(ls.nextSweep) {
		ls.sweep(now)
	}
	l, ok := ls.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(ls.limit, ls.burst)}
		ls.limiters[ip] = l
	}
	l.expires = now.Add(limiterIdleTTL)
	return l.limiter.AllowN(now, 1)
}

func (ls *limiterStore) sweep(now time.Time) {
	for key, l := range ls.limiters {
		if now.After(l.expires) {
			delete(ls.limiters, key)
		}
	}
	ls.nextSweep = now.Add(limiterSweepInterval)
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
