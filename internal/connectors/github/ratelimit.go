package github

import (
	"context"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/time/rate"
)

const (
	// authenticatedLimit is the hourly quota assumed until GitHub reports one.
	authenticatedLimit = 5000

	// paceInterval spreads requests to roughly 4300 an hour.
	paceInterval = 833 * time.Millisecond

	// maxReserve caps the requests held back for other tools sharing the token.
	maxReserve = 100
)

// Quota is the rate limit GitHub reported on the latest response.
type Quota struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// reserve is a tenth of the limit, at most maxReserve. Unauthenticated
// clients only get 60 requests an hour.
func (q Quota) reserve() int {
	return min(maxReserve, q.Limit/10)
}

// RateLimiter paces GitHub calls and, once the remaining quota drops into
// the reserve, holds them until the window resets.
type RateLimiter struct {
	pace *rate.Limiter

	mu    sync.Mutex
	quota Quota
	now   func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		pace:  rate.NewLimiter(rate.Every(paceInterval), 1),
		quota: Quota{Limit: authenticatedLimit, Remaining: authenticatedLimit},
		now:   time.Now,
	}
}

// Wait blocks until a request may be sent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.pace.Wait(ctx); err != nil {
		return err
	}

	q := r.Quota()
	if q.Remaining >= q.reserve() {
		return nil
	}
	d := q.Reset.Sub(r.now())
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Observe records the rate reported on a response. Responses without rate
// headers leave the quota unchanged.
func (r *RateLimiter) Observe(rt gh.Rate) {
	if rt.Limit == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.quota = Quota{Limit: rt.Limit, Remaining: rt.Remaining, Reset: rt.Reset.Time}
}

func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quota
}
