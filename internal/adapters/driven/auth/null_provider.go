package auth

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// NullTokenProvider is used when no credential is configured.
// Public sheets and repositories are still reachable.
type NullTokenProvider struct{}

// NewNullTokenProvider creates a token provider with no credential.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken returns an empty string.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", nil
}

// AuthMethod returns AuthMethodNone.
func (p *NullTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodNone
}

// IsAuthenticated always returns true.
func (p *NullTokenProvider) IsAuthenticated() bool {
	return true
}
