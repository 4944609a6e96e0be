package driven

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// CommandRunner invokes external processes.
// Success is determined by exit status: a non-zero exit returns an error
// (a *domain.CommandError) alongside the captured output.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*domain.CommandResult, error)
}
