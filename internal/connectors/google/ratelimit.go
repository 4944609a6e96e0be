package google

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
)

// Quota is the client-side request budget for one Google API.
type Quota struct {
	Every time.Duration // minimum spacing between sustained requests
	Burst int
}

var (
	// SheetsQuota stays under the 60 reads per minute per user limit.
	SheetsQuota = Quota{Every: time.Second, Burst: 3}
	// DriveQuota stays under 10 requests per second per user.
	DriveQuota = Quota{Every: 125 * time.Millisecond, Burst: 10}
)

// defaultPause applies when a 429 carries no usable Retry-After.
const defaultPause = time.Minute

// Throttle paces calls to one API and pauses them after a 429.
type Throttle struct {
	bucket *rate.Limiter

	mu          sync.Mutex
	pausedUntil time.Time
	now         func() time.Time
}

func NewThrottle(q Quota) *Throttle {
	return &Throttle{
		bucket: rate.NewLimiter(rate.Every(q.Every), q.Burst),
		now:    time.Now,
	}
}

// Wait blocks until the pause (if any) is over and a token is available.
func (t *Throttle) Wait(ctx context.Context) error {
	if d := t.PausedUntil().Sub(t.now()); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return t.bucket.Wait(ctx)
}

// Observe records the outcome of a call. A rate-limit error pauses the
// throttle for the server's Retry-After, or a minute without one.
func (t *Throttle) Observe(err error) {
	if !IsRateLimited(err) {
		return
	}

	until := t.now().Add(retryAfter(err))

	t.mu.Lock()
	if until.After(t.pausedUntil) {
		t.pausedUntil = until
	}
	t.mu.Unlock()
}

// PausedUntil returns the end of the current pause, zero if none was set.
func (t *Throttle) PausedUntil() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pausedUntil
}

func retryAfter(err error) time.Duration {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Header != nil {
		if secs, perr := strconv.Atoi(gerr.Header.Get("Retry-After")); perr == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultPause
}
