package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	old := version
	version = v
	t.Cleanup(func() { version = old })
}

func TestVersionCmd_PrintsBuildVersion(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "roadmap-sync version 1.4.0")
	assert.Contains(t, out, runtime.Version())
}

func TestVersionCmd_DevByDefault(t *testing.T) {
	withVersion(t, "dev")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "roadmap-sync version dev")
}

func TestVersionCmd_RejectsArguments(t *testing.T) {
	_, err := execute(t, "version", "extra")

	assert.Error(t, err)
}
