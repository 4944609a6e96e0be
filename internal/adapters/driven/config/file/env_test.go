package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("ROADMAP_SYNC_GOOGLE_API_KEY", "key")
	t.Setenv("ROADMAP_SYNC_GOOGLE_TOKEN", "")
	t.Setenv("ROADMAP_SYNC_GITHUB_TOKEN", "ghp_x")

	secrets, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, Secrets{GoogleAPIKey: "key", GitHubToken: "ghp_x"}, secrets)
	assert.True(t, secrets.HasGoogle())
}

func TestSecrets_HasGoogle(t *testing.T) {
	assert.False(t, Secrets{}.HasGoogle())
	assert.True(t, Secrets{GoogleToken: "t"}.HasGoogle())
}
