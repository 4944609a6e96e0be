package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with rate limiting and error mapping.
type Client struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
	baseURL       string
	httpClient    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise server or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets the transport used when no token is configured.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a GitHub API client. The go-github client is built on
// first use so the token is only read when needed.
func NewClient(tokenProvider driven.TokenProvider, opts ...Option) *Client {
	c := &Client{
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ensureClient(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}

	hc := c.httpClient
	if c.tokenProvider != nil && c.tokenProvider.AuthMethod() == domain.AuthMethodToken {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		if hc != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, hc)
		}
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	if hc == nil {
		hc = &http.Client{}
	}
	if hc.Timeout == 0 {
		hc.Timeout = DefaultTimeout
	}

	client := gh.NewClient(hc)
	if c.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return fmt.Errorf("parse base url: %w", err)
		}
		client.BaseURL = base
	}
	c.gh = client

	return nil
}

// RateLimiter returns the client's rate limiter.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

func (c *Client) observe(resp *gh.Response) {
	if resp != nil {
		c.rateLimiter.Observe(resp.Rate)
	}
}
