package github

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// ErrInvalidReference is returned for ids that are not owner/repo#number.
var ErrInvalidReference = errors.New("github: invalid issue reference")

// RateLimitError means GitHub refused the call until Reset.
type RateLimitError struct {
	Reset time.Time
}

func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return "github: rate limited"
	}
	return "github: rate limited until " + e.Reset.UTC().Format(time.RFC3339)
}

// StatusError is a non-2xx response other than a rate limit.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// wrapError maps a go-github error for op. The result always matches
// domain.ErrFetchFailed.
func wrapError(op string, err error, quota Quota) error {
	var (
		rate  *gh.RateLimitError
		abuse *gh.AbuseRateLimitError
		resp  *gh.ErrorResponse
	)

	switch {
	case errors.As(err, &rate):
		err = &RateLimitError{Reset: rate.Rate.Reset.Time}
	case errors.As(err, &abuse):
		reset := quota.Reset
		if abuse.RetryAfter != nil {
			reset = time.Now().Add(*abuse.RetryAfter)
		}
		err = &RateLimitError{Reset: reset}
	case errors.As(err, &resp) && resp.Response != nil:
		err = &StatusError{Status: resp.Response.StatusCode, Message: resp.Message}
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrFetchFailed, err)
}
