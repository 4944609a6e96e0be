package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

type staticProvider struct {
	method domain.AuthMethod
	token  string
}

func (p staticProvider) GetToken(context.Context) (string, error) { return p.token, nil }
func (p staticProvider) AuthMethod() domain.AuthMethod           { return p.method }
func (p staticProvider) IsAuthenticated() bool                   { return true }

func newTestClient(t *testing.T, mux *http.ServeMux, provider staticProvider) *Client {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := NewClient(provider, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	c.rateLimiter.pace.SetLimit(rate.Inf)
	return c
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		id      string
		want    IssueRef
		wantErr bool
	}{
		{id: "github:acme/roadmap#42", want: IssueRef{Owner: "acme", Repo: "roadmap", Number: 42}},
		{id: "acme/roadmap#7", want: IssueRef{Owner: "acme", Repo: "roadmap", Number: 7}},
		{id: "github:acme/roadmap", wantErr: true},
		{id: "github:acme#1", wantErr: true},
		{id: "github:acme/road/map#1", wantErr: true},
		{id: "github:acme/roadmap#x", wantErr: true},
		{id: "github:acme/roadmap#0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseRef(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIssueRef_String(t *testing.T) {
	assert.Equal(t, "github:acme/roadmap#42", IssueRef{Owner: "acme", Repo: "roadmap", Number: 42}.String())
}

func TestFetchDocument(t *testing.T) {
	var authHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/roadmap/issues/42", func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "4999")
		_, _ = w.Write([]byte(`{
			"number": 42,
			"title": "Global Payouts USDC",
			"body": "Rollout plan",
			"html_url": "https://github.com/acme/roadmap/issues/42",
			"comments": 1
		}`))
	})
	mux.HandleFunc("/repos/acme/roadmap/issues/42/comments", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{
			"body": "Brazil is live",
			"user": {"login": "octocat"},
			"created_at": "2026-03-02T10:00:00Z"
		}]`))
	})

	c := newTestClient(t, mux, staticProvider{method: domain.AuthMethodToken, token: "ghp_test"})

	doc, err := c.FetchDocument(context.Background(), "github:acme/roadmap#42")
	require.NoError(t, err)

	assert.Equal(t, "Bearer ghp_test", authHeader)
	assert.Equal(t, domain.RawDocument{
		Title:   "Global Payouts USDC",
		Content: "Rollout plan\n\n--- octocat, 2026-03-02\nBrazil is live",
		URL:     "https://github.com/acme/roadmap/issues/42",
	}, doc)
	assert.Equal(t, 4999, c.RateLimiter().Quota().Remaining)
}

func TestFetchDocument_NoComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/roadmap/issues/1", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"number": 1, "title": "T", "body": "B", "html_url": "u", "comments": 0}`))
	})

	c := newTestClient(t, mux, staticProvider{method: domain.AuthMethodNone})

	doc, err := c.FetchDocument(context.Background(), "github:acme/roadmap#1")
	require.NoError(t, err)
	assert.Equal(t, "B", doc.Content)
}

func TestFetchDocument_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/roadmap/issues/9", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	c := newTestClient(t, mux, staticProvider{method: domain.AuthMethodNone})

	_, err := c.FetchDocument(context.Background(), "github:acme/roadmap#9")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchDocument_InvalidReference(t *testing.T) {
	c := NewClient(nil)

	_, err := c.FetchDocument(context.Background(), "github:nope")
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestRateLimiter_SmallQuotaKeepsTenthInReserve(t *testing.T) {
	r := NewRateLimiter()
	reset := time.Unix(4102444800, 0)

	r.Observe(gh.Rate{Limit: 60, Remaining: 30, Reset: gh.Timestamp{Time: reset}})

	assert.Equal(t, Quota{Limit: 60, Remaining: 30, Reset: reset}, r.Quota())
	assert.Equal(t, 6, r.Quota().reserve())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, r.Wait(ctx))
}

func TestRateLimiter_IgnoresMissingRate(t *testing.T) {
	r := NewRateLimiter()

	r.Observe(gh.Rate{})

	assert.Equal(t, 5000, r.Quota().Limit)
	assert.Equal(t, 100, r.Quota().reserve())
}

func TestRateLimiter_WaitsForResetWhenExhausted(t *testing.T) {
	r := NewRateLimiter()
	r.Observe(gh.Rate{Limit: 5000, Remaining: 0, Reset: gh.Timestamp{Time: time.Unix(4102444800, 0)}})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_PastResetDoesNotBlock(t *testing.T) {
	r := NewRateLimiter()
	r.Observe(gh.Rate{Limit: 5000, Remaining: 0, Reset: gh.Timestamp{Time: time.Now().Add(-time.Minute)}})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, r.Wait(ctx))
}

func TestFetchDocument_RateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/roadmap/issues/3", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "4102444800")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "API rate limit exceeded for 127.0.0.1."}`))
	})

	c := newTestClient(t, mux, staticProvider{method: domain.AuthMethodNone})

	_, err := c.FetchDocument(context.Background(), "acme/roadmap#3")
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "2100-01-01")
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Status: http.StatusUnauthorized, Message: "Bad credentials"}

	assert.Equal(t, "github: 401 Unauthorized: Bad credentials", err.Error())
	assert.Equal(t, "github: rate limited", (&RateLimitError{}).Error())
}
