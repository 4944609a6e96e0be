package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

func TestBuildRuntime(t *testing.T) {
	configDir := t.TempDir()
	repoDir := t.TempDir()
	t.Setenv("ROADMAP_SYNC_GOOGLE_API_KEY", "test-key")

	config := "[repo]\npath = \"" + filepath.ToSlash(repoDir) + "\"\n\n[schedule]\ninterval = \"6h\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600))

	rt, err := buildRuntime(context.Background(), configDir)
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()

	assert.Equal(t, filepath.Join(configDir, "config.toml"), rt.ConfigPath)
	assert.Equal(t, repoDir, rt.Config.RepoPath)
	assert.Equal(t, "6h0m0s", rt.Values["schedule.interval"])
	assert.NotNil(t, rt.Scheduler)
	assert.NotNil(t, rt.Watch)
	assert.FileExists(t, filepath.Join(configDir, dataDirName, "scheduler.db"))

	history, err := rt.Scheduler.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestBuildRuntime_InvalidConfig(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[documents]\nconcurrency = 0\n"), 0o600))

	_, err := buildRuntime(context.Background(), configDir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpenSchedulerStore_FallsBackToMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	store, closeFn := openSchedulerStore(filepath.Join(blocker, "data"))
	require.NotNil(t, store)
	assert.NoError(t, closeFn())

	require.NoError(t, store.SaveTask(context.Background(), &domain.ScheduledTask{ID: "t"}))
	task, err := store.Task(context.Background(), "t")
	require.NoError(t, err)
	assert.NotNil(t, task)
}
