package file

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Secrets holds credentials read from the environment. They are never
// written to the configuration file.
type Secrets struct {
	// GoogleAPIKey authorises Sheets and Drive reads of public documents.
	GoogleAPIKey string `env:"ROADMAP_SYNC_GOOGLE_API_KEY"`

	// GoogleToken is an OAuth access token for private documents.
	GoogleToken string `env:"ROADMAP_SYNC_GOOGLE_TOKEN"`

	// GitHubToken authorises GitHub issue reads.
	GitHubToken string `env:"ROADMAP_SYNC_GITHUB_TOKEN"`
}

// LoadEnv reads secrets from environment variables.
func LoadEnv() (Secrets, error) {
	var secrets Secrets
	if err := env.Parse(&secrets); err != nil {
		return Secrets{}, fmt.Errorf("parse env: %w", err)
	}
	return secrets, nil
}

// HasGoogle reports whether any Google credential is set.
func (s Secrets) HasGoogle() bool {
	return s.GoogleAPIKey != "" || s.GoogleToken != ""
}
