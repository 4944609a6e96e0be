package memory

import (
	"maps"
	"slices"
	"strings"

	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

var _ driven.ConfigStore = ConfigStore(nil)

// ConfigStore is a fixed set of dotted configuration keys. It stands in for
// the TOML file in tests and when no config directory is usable.
type ConfigStore map[string]any

// NewConfigStore merges the given maps; later maps win.
func NewConfigStore(layers ...map[string]any) ConfigStore {
	s := make(ConfigStore)
	for _, layer := range layers {
		maps.Copy(s, layer)
	}
	return s
}

func (s ConfigStore) Lookup(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

func (s ConfigStore) Keys(prefix string) []string {
	keys := slices.Sorted(maps.Keys(s))
	return slices.DeleteFunc(keys, func(k string) bool { return !strings.HasPrefix(k, prefix) })
}

func (s ConfigStore) Path() string { return ":memory:" }
