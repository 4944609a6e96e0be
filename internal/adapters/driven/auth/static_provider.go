package auth

import (
	"context"
	"errors"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// ErrNoCredential is returned when a static provider holds no secret.
var ErrNoCredential = errors.New("auth: no credential configured")

// StaticTokenProvider serves a fixed secret read from the environment.
// Access tokens and API keys don't refresh.
type StaticTokenProvider struct {
	method domain.AuthMethod
	secret string
}

// NewTokenProvider creates a provider for a bearer access token.
func NewTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{method: domain.AuthMethodToken, secret: token}
}

// NewAPIKeyProvider creates a provider for a Google API key.
func NewAPIKeyProvider(key string) *StaticTokenProvider {
	return &StaticTokenProvider{method: domain.AuthMethodAPIKey, secret: key}
}

// GetToken returns the secret.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.secret == "" {
		return "", ErrNoCredential
	}
	return p.secret, nil
}

// AuthMethod returns the method the provider was created with.
func (p *StaticTokenProvider) AuthMethod() domain.AuthMethod {
	return p.method
}

// IsAuthenticated returns true if a secret is present.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.secret != ""
}
