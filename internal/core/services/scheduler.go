package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driving"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

var _ driving.Scheduler = (*Scheduler)(nil)

const (
	// historyRetention is the number of runs kept in the history.
	historyRetention = 100

	taskName = "Roadmap Sync"
)

// Scheduler runs the sync on its configured interval. Every run, scheduled
// or manual, is appended to the history; only scheduled runs move the
// task's next-run time. At most one run is active at a time.
type Scheduler struct {
	schedule domain.Schedule
	store    driven.SchedulerStore
	sync     driving.SyncOrchestrator

	tick     time.Duration // how often the task is checked
	now      func() time.Time
	onResult func(domain.SyncResult)

	busy atomic.Bool

	mu   sync.Mutex
	stop chan struct{} // non-nil while started
	wg   sync.WaitGroup
}

func NewScheduler(schedule domain.Schedule, store driven.SchedulerStore, orch driving.SyncOrchestrator) *Scheduler {
	return &Scheduler{
		schedule: schedule,
		store:    store,
		sync:     orch,
		tick:     time.Minute,
		now:      time.Now,
	}
}

// OnResult registers a callback for scheduled runs. Call it before Start.
func (s *Scheduler) OnResult(fn func(domain.SyncResult)) {
	s.onResult = fn
}

// Start registers the task and checks it every tick until Stop is called or
// ctx ends. A second concurrent Start returns nil immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return nil
	}
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	if !s.schedule.Enabled {
		logger.Info("Scheduled runs are disabled")
	}
	if err := s.register(ctx); err != nil {
		logger.Warn("scheduler: register %s: %v", domain.TaskIDRoadmapSync, err)
	}

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		s.poll(ctx)

		select {
		case <-ctx.Done():
			s.mu.Lock()
			if s.stop == stop {
				s.stop = nil
			}
			s.mu.Unlock()
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
		}
	}
}

// Stop ends the loop and waits for a scheduled run in progress.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}

// RunNow performs a sync immediately and records it in the history.
// It fails with domain.ErrSyncInProgress while another run is active.
func (s *Scheduler) RunNow(ctx context.Context) (domain.SyncResult, error) {
	if s.sync == nil {
		return domain.SyncResult{}, domain.ErrSourceUnavailable
	}
	if !s.busy.CompareAndSwap(false, true) {
		return domain.SyncResult{}, domain.ErrSyncInProgress
	}
	defer s.busy.Store(false)

	return s.execute(ctx, nil), nil
}

// Task returns the stored state of the sync task, nil before the first Start.
func (s *Scheduler) Task(ctx context.Context) (*domain.ScheduledTask, error) {
	return s.store.Task(ctx, domain.TaskIDRoadmapSync)
}

// History returns up to limit recent runs, newest first. A non-positive
// limit returns the whole retained history.
func (s *Scheduler) History(ctx context.Context, limit int) ([]domain.TaskResult, error) {
	if limit <= 0 {
		limit = historyRetention
	}
	return s.store.History(ctx, domain.TaskIDRoadmapSync, limit)
}

// register saves the task with the configured interval and switch. A new
// task has no next-run time and so runs on the first check.
func (s *Scheduler) register(ctx context.Context) error {
	interval := s.schedule.Interval
	if interval <= 0 {
		interval = domain.DefaultScheduleInterval
	}

	task, err := s.store.Task(ctx, domain.TaskIDRoadmapSync)
	if err != nil {
		return err
	}
	if task == nil {
		task = &domain.ScheduledTask{ID: domain.TaskIDRoadmapSync, Name: taskName, Interval: interval}
	} else {
		task.Reschedule(interval, s.now())
	}
	task.Enabled = s.schedule.Enabled

	return s.store.SaveTask(ctx, task)
}

// poll starts a background run when the task is due. A due task is skipped
// while another run is active and picked up on a later tick.
func (s *Scheduler) poll(ctx context.Context) {
	task, err := s.store.Task(ctx, domain.TaskIDRoadmapSync)
	if err != nil {
		logger.Warn("scheduler: load %s: %v", domain.TaskIDRoadmapSync, err)
		return
	}
	if task == nil || !task.Due(s.now()) {
		return
	}
	if s.sync == nil {
		logger.Warn("scheduler: %v", domain.ErrSourceUnavailable)
		return
	}
	if !s.busy.CompareAndSwap(false, true) {
		logger.Debug("scheduler: %v, skipping this check", domain.ErrSyncInProgress)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.busy.Store(false)

		result := s.execute(ctx, task)
		if s.onResult != nil {
			s.onResult(result)
		}
	}()
}

// execute runs one sync and records it. Bookkeeping outlives ctx so a run
// cut short by shutdown is still recorded.
func (s *Scheduler) execute(ctx context.Context, task *domain.ScheduledTask) domain.SyncResult {
	started := s.now()
	result := s.sync.Run(ctx)
	record := domain.NewTaskResult(domain.TaskIDRoadmapSync, started, s.now(), result)

	bookkeeping := context.WithoutCancel(ctx)
	if task != nil {
		task.Apply(record)
		if err := s.store.SaveTask(bookkeeping, task); err != nil {
			logger.Warn("scheduler: save %s: %v", task.ID, err)
		}
	}
	if err := s.store.AppendResult(bookkeeping, record, historyRetention); err != nil {
		logger.Warn("scheduler: record run %s: %v", record.RunID, err)
	}
	return result
}
