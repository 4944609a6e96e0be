package google

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// errEmptyToken is returned when the provider yields no token.
var errEmptyToken = errors.New("google: empty access token")

// tokenSource exposes a driven.TokenProvider as an oauth2.TokenSource.
type tokenSource struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource that asks the provider for a
// bearer token on every call. Wrap it in oauth2.ReuseTokenSource to cache.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &tokenSource{provider: provider, ctx: ctx}
}

// Token implements oauth2.TokenSource.
func (t *tokenSource) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}
	if accessToken == "" {
		return nil, errEmptyToken
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
