package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_MissingFileIsEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Equal(t, tmpDir, store.Dir())
	assert.Empty(t, store.Keys(""))
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".roadmap-sync", "config.toml"), store.Path())
	assert.DirExists(t, filepath.Join(home, ".roadmap-sync"))
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("sheet = {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.ErrorContains(t, err, "parse")
	assert.Nil(t, store)
}

func TestConfigStore_FlattensTables(t *testing.T) {
	store := storeWith(t, `
top = "v"

[sheet]
id = "abc"

[documents]
ids = ["project_1", "gdoc:xyz"]
concurrency = 2

[targets.recommendation_card]
path = "web/card.tsx"
`)

	for key, want := range map[string]any{
		"top":                              "v",
		"sheet.id":                         "abc",
		"documents.ids":                    []any{"project_1", "gdoc:xyz"},
		"documents.concurrency":            int64(2),
		"targets.recommendation_card.path": "web/card.tsx",
	} {
		got, ok := store.Lookup(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok := store.Lookup("sheet")
	assert.False(t, ok, "tables are not values")
}

func TestConfigStore_Keys(t *testing.T) {
	store := storeWith(t, `
[sheet]
id = "x"

[targets.b]
path = "b.tsx"

[targets.a]
path = "a.tsx"
`)

	assert.Equal(t, []string{"targets.a.path", "targets.b.path"}, store.Keys("targets."))
	assert.Len(t, store.Keys(""), 3)
	assert.Empty(t, store.Keys("remotes."))
}

func TestConfigStore_LoadPicksUpEdits(t *testing.T) {
	store := storeWith(t, "[sheet]\nid = \"before\"\n")

	require.NoError(t, os.WriteFile(store.Path(), []byte("[sheet]\nid = \"after\"\n"), 0600))
	require.NoError(t, store.Load())

	v, _ := store.Lookup("sheet.id")
	assert.Equal(t, "after", v)
}

func TestConfigStore_LoadErrorKeepsPreviousValues(t *testing.T) {
	store := storeWith(t, "[sheet]\nid = \"before\"\n")

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))
	assert.Error(t, store.Load())

	v, ok := store.Lookup("sheet.id")
	assert.True(t, ok)
	assert.Equal(t, "before", v)
}

func TestConfigStore_LoadUnreadable(t *testing.T) {
	store := storeWith(t, "")

	// A directory in place of the file cannot be read.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.ErrorContains(t, store.Load(), "read")
}

func TestConfigStore_ConcurrentLoadAndLookup(t *testing.T) {
	store := storeWith(t, "[documents]\nconcurrency = 3\n")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Load()
			_, _ = store.Lookup("documents.concurrency")
			_ = store.Keys("documents.")
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"documents.concurrency"}, store.Keys("documents."))
}

func TestFlatten(t *testing.T) {
	flat := map[string]any{}
	flatten(flat, "", map[string]any{
		"sheet": map[string]any{"id": "abc", "more": map[string]any{"deep": true}},
		"top":   "v",
	})

	assert.Equal(t, map[string]any{"sheet.id": "abc", "sheet.more.deep": true, "top": "v"}, flat)
}
