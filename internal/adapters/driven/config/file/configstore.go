package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

const (
	// DirName is the configuration directory created under the user's home.
	DirName = ".roadmap-sync"
	// FileName is the configuration file inside the configuration directory.
	FileName = "config.toml"
)

// ConfigStore reads config.toml and exposes its tables as dotted keys.
// The file is read on construction and again on every Load; a missing file
// is an empty configuration.
type ConfigStore struct {
	dir  string
	path string

	mu   sync.RWMutex
	flat map[string]any
}

// NewConfigStore opens the configuration in dir, creating the directory if
// needed. An empty dir means ~/.roadmap-sync.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, DirName)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &ConfigStore{dir: dir, path: filepath.Join(dir, FileName)}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load re-reads the file. On error the previously loaded values are kept.
func (s *ConfigStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		raw, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	tree := map[string]any{}
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}

	flat := make(map[string]any)
	flatten(flat, "", tree)

	s.mu.Lock()
	s.flat = flat
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.flat[key]
	return v, ok
}

func (s *ConfigStore) Keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k := range s.flat {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Dir returns the configuration directory.
func (s *ConfigStore) Dir() string { return s.dir }

// Path returns the configuration file path.
func (s *ConfigStore) Path() string { return s.path }

// flatten copies tree into dst, joining table names with dots.
func flatten(dst map[string]any, prefix string, tree map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if table, ok := v.(map[string]any); ok {
			flatten(dst, k, table)
			continue
		}
		dst[k] = v
	}
}
