package auth

import "github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"

// GoogleProvider picks the Google credential. An access token wins over an
// API key; with neither the requests go out unauthenticated.
func GoogleProvider(apiKey, token string) driven.TokenProvider {
	switch {
	case token != "":
		return NewTokenProvider(token)
	case apiKey != "":
		return NewAPIKeyProvider(apiKey)
	default:
		return NewNullTokenProvider()
	}
}

// GitHubProvider returns a token provider for the GitHub API, or a null
// provider when no token is set.
func GitHubProvider(token string) driven.TokenProvider {
	if token == "" {
		return NewNullTokenProvider()
	}
	return NewTokenProvider(token)
}
