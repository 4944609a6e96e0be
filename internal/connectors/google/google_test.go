package google

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

type stubProvider struct {
	method domain.AuthMethod
	token  string
	err    error
}

func (p stubProvider) GetToken(context.Context) (string, error) { return p.token, p.err }
func (p stubProvider) AuthMethod() domain.AuthMethod           { return p.method }
func (p stubProvider) IsAuthenticated() bool                   { return p.token != "" }

func TestClientOptions(t *testing.T) {
	ctx := context.Background()

	opts, err := ClientOptions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	opts, err = ClientOptions(ctx, stubProvider{method: domain.AuthMethodAPIKey, token: "key"}, option.WithEndpoint("http://localhost/"))
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	opts, err = ClientOptions(ctx, stubProvider{method: domain.AuthMethodToken, token: "tok"})
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestClientOptions_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := ClientOptions(ctx, stubProvider{method: domain.AuthMethodAPIKey, err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = ClientOptions(ctx, stubProvider{method: "saml"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTokenSource(t *testing.T) {
	ts := NewTokenSource(context.Background(), stubProvider{method: domain.AuthMethodToken, token: "tok"})

	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)

	_, err = NewTokenSource(context.Background(), stubProvider{method: domain.AuthMethodToken}).Token()
	assert.ErrorIs(t, err, errEmptyToken)
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
	}

	for _, tt := range tests {
		err := WrapError(&googleapi.Error{Code: tt.code})
		assert.ErrorIs(t, err, tt.want)
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
	}

	gerr := &googleapi.Error{Code: http.StatusInternalServerError}
	err := WrapError(gerr)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorAs(t, err, &gerr)

	assert.NoError(t, WrapError(nil))
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsUnauthorized(&googleapi.Error{Code: http.StatusUnauthorized}))
	assert.True(t, IsForbidden(ErrForbidden))
	assert.True(t, IsNotFound(&googleapi.Error{Code: http.StatusNotFound}))
	assert.True(t, IsRateLimited(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.False(t, IsRateLimited(errors.New("other")))
}

func TestThrottle_PausesOnRateLimit(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	th := NewThrottle(Quota{Every: time.Millisecond, Burst: 1})
	th.now = func() time.Time { return now }

	th.Observe(nil)
	th.Observe(&googleapi.Error{Code: http.StatusNotFound})
	assert.True(t, th.PausedUntil().IsZero())

	th.Observe(&googleapi.Error{Code: http.StatusTooManyRequests, Header: http.Header{"Retry-After": {"30"}}})
	assert.Equal(t, now.Add(30*time.Second), th.PausedUntil())

	// A shorter pause never cuts an existing one.
	th.Observe(&googleapi.Error{Code: http.StatusTooManyRequests, Header: http.Header{"Retry-After": {"5"}}})
	assert.Equal(t, now.Add(30*time.Second), th.PausedUntil())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, th.Wait(ctx), context.Canceled)
}

func TestThrottle_DefaultPause(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	th := NewThrottle(SheetsQuota)
	th.now = func() time.Time { return now }

	th.Observe(ErrRateLimited)

	assert.Equal(t, now.Add(defaultPause), th.PausedUntil())
}

func TestThrottle_WaitWithoutPause(t *testing.T) {
	th := NewThrottle(DriveQuota)

	assert.NoError(t, th.Wait(context.Background()))
}
