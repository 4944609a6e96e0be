package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

var _ driven.SchedulerStore = (*SchedulerStore)(nil)

// SchedulerStore keeps scheduler state in process memory. It backs the
// scheduler when the SQLite database cannot be opened; nothing survives exit.
type SchedulerStore struct {
	mu      sync.RWMutex
	tasks   map[string]domain.ScheduledTask
	history map[string][]domain.TaskResult // oldest first
}

func NewSchedulerStore() *SchedulerStore {
	return &SchedulerStore{
		tasks:   make(map[string]domain.ScheduledTask),
		history: make(map[string][]domain.TaskResult),
	}
}

// Task returns a copy of the stored task.
func (s *SchedulerStore) Task(_ context.Context, taskID string) (*domain.ScheduledTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (s *SchedulerStore) SaveTask(_ context.Context, task *domain.ScheduledTask) error {
	if task == nil {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

func (s *SchedulerStore) AppendResult(_ context.Context, result domain.TaskResult, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := append(s.history[result.TaskID], result)
	if keep >= 0 && len(runs) > keep {
		runs = slices.Clone(runs[len(runs)-keep:])
	}
	s.history[result.TaskID] = runs
	return nil
}

func (s *SchedulerStore) History(_ context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := s.history[taskID]
	n := min(limit, len(runs))
	if n <= 0 {
		return nil, nil
	}

	newest := slices.Clone(runs[len(runs)-n:])
	slices.Reverse(newest)
	return newest, nil
}
