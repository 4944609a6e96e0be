package driving

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// Scheduler runs the roadmap sync periodically.
type Scheduler interface {
	// Start begins running scheduled tasks.
	// Blocks until context is cancelled or an error occurs.
	Start(ctx context.Context) error

	// Stop gracefully stops all running tasks.
	Stop() error

	// RunNow performs a sync immediately and records it in the history.
	RunNow(ctx context.Context) (domain.SyncResult, error)

	// OnResult registers a callback for every completed run.
	OnResult(fn func(domain.SyncResult))

	// Task returns the persisted state of the sync task, or nil before
	// the first start.
	Task(ctx context.Context) (*domain.ScheduledTask, error)

	// History returns the most recent results, newest first.
	History(ctx context.Context, limit int) ([]domain.TaskResult, error)
}
