package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driving"
)

// errRuntimeNotConfigured is returned when no RuntimeFactory was set.
var errRuntimeNotConfigured = errors.New("runtime not configured")

// Runtime holds the services the commands operate on.
type Runtime struct {
	// ConfigPath is the configuration file in use.
	ConfigPath string

	// Config is the effective sync configuration.
	Config domain.SyncConfig

	// Values is the flattened configuration shown by "config show".
	Values map[string]any

	// Scheduler runs syncs and keeps their history.
	Scheduler driving.Scheduler

	// Watch blocks until ctx ends, reloading the configuration on change.
	// It may be nil when reloading is unavailable.
	Watch func(ctx context.Context) error

	// Close releases the runtime's resources.
	Close func() error
}

func (r *Runtime) close() {
	if r.Close != nil {
		_ = r.Close()
	}
}

// RuntimeFactory builds a Runtime from a configuration directory.
// An empty directory selects the default location.
type RuntimeFactory func(ctx context.Context, configDir string) (*Runtime, error)

var newRuntime RuntimeFactory

// SetRuntimeFactory sets how commands obtain their services.
func SetRuntimeFactory(factory RuntimeFactory) {
	newRuntime = factory
}

func loadRuntime(cmd *cobra.Command) (*Runtime, error) {
	if newRuntime == nil {
		return nil, errRuntimeNotConfigured
	}
	return newRuntime(cmd.Context(), configDir)
}
