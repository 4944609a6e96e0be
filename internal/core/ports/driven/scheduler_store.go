package driven

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// SchedulerStore keeps the scheduled task and its run history across
// restarts.
type SchedulerStore interface {
	// Task returns nil and no error when taskID has never been saved.
	Task(ctx context.Context, taskID string) (*domain.ScheduledTask, error)

	// SaveTask creates or replaces the task with the same ID.
	SaveTask(ctx context.Context, task *domain.ScheduledTask) error

	// AppendResult adds a run to the history of its task, then drops all
	// but the newest keep results of that task.
	AppendResult(ctx context.Context, result domain.TaskResult, keep int) error

	// History returns up to limit results of taskID, newest first.
	History(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error)
}
