package domain

// AuthMethod identifies how a connector authenticates.
type AuthMethod string

const (
	// AuthMethodNone means no authentication (public resources).
	AuthMethodNone AuthMethod = "none"

	// AuthMethodToken means a bearer access token (OAuth or PAT).
	AuthMethodToken AuthMethod = "token"

	// AuthMethodAPIKey means a Google API key.
	AuthMethodAPIKey AuthMethod = "api_key"
)
