package domain

import (
	"strings"
	"time"
)

// TaskIDRoadmapSync keys the sync task in the scheduler store.
const TaskIDRoadmapSync = "roadmap-sync"

// Schedule configures periodic runs.
type Schedule struct {
	Enabled  bool
	Interval time.Duration
}

// ScheduledTask is the persisted state of the recurring sync.
type ScheduledTask struct {
	ID       string
	Name     string
	Interval time.Duration
	Enabled  bool

	LastRun     time.Time
	NextRun     time.Time // zero until the first run finishes
	LastSuccess time.Time
	LastError   string // errors of the last run, one per line
}

// Due reports whether an enabled task should start at now.
// A task that has never finished a run is always due.
func (t *ScheduledTask) Due(now time.Time) bool {
	return t.Enabled && !t.NextRun.After(now)
}

// Apply moves the task past a finished run. The next run is measured from
// the end of this one, so a slow run never causes back-to-back starts.
func (t *ScheduledTask) Apply(r TaskResult) {
	t.LastRun = r.StartedAt
	t.NextRun = r.EndedAt.Add(t.Interval)
	if r.Success {
		t.LastSuccess = r.EndedAt
		t.LastError = ""
		return
	}
	t.LastError = r.Error
}

// Reschedule changes the interval. A change restarts the countdown from now.
func (t *ScheduledTask) Reschedule(interval time.Duration, now time.Time) {
	if interval == t.Interval {
		return
	}
	t.Interval = interval
	t.NextRun = now.Add(interval)
}

// TaskResult is one entry of the run history.
type TaskResult struct {
	TaskID         string
	RunID          string
	StartedAt      time.Time
	EndedAt        time.Time
	Success        bool
	Error          string
	ItemsProcessed int // files updated
}

// NewTaskResult summarises a sync run for the history.
func NewTaskResult(taskID string, started, ended time.Time, run SyncResult) TaskResult {
	return TaskResult{
		TaskID:         taskID,
		RunID:          run.RunID,
		StartedAt:      started,
		EndedAt:        ended,
		Success:        run.Succeeded(),
		Error:          strings.Join(run.Errors, "\n"),
		ItemsProcessed: len(run.FilesUpdated),
	}
}

func (r TaskResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}
