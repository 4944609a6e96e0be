package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

const taskColumns = `id, name, interval_ms, last_run, next_run, last_error, last_success, enabled`

const resultColumns = `task_id, run_id, started_at, ended_at, success, error, items_processed`

// schedulerStore implements driven.SchedulerStore.
type schedulerStore struct {
	db *sql.DB
}

var _ driven.SchedulerStore = (*schedulerStore)(nil)

// Task returns nil and no error if the task does not exist.
func (s *schedulerStore) Task(ctx context.Context, taskID string) (*domain.ScheduledTask, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM scheduled_tasks WHERE id = ?`, taskID)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", taskID, err)
	}
	return &task, nil
}

func (s *schedulerStore) SaveTask(ctx context.Context, task *domain.ScheduledTask) error {
	if task == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scheduled_tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			interval_ms = excluded.interval_ms,
			last_run = excluded.last_run,
			next_run = excluded.next_run,
			last_error = excluded.last_error,
			last_success = excluded.last_success,
			enabled = excluded.enabled`,
		task.ID, task.Name, task.Interval.Milliseconds(),
		toMillis(task.LastRun), toMillis(task.NextRun),
		task.LastError, toMillis(task.LastSuccess), task.Enabled)
	if err != nil {
		return fmt.Errorf("save task %s: %w", task.ID, err)
	}
	return nil
}

// AppendResult inserts the result and prunes the task's history in one
// transaction.
func (s *schedulerStore) AppendResult(ctx context.Context, result domain.TaskResult, keep int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append result for %s: %w", result.TaskID, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO task_results (`+resultColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.TaskID, result.RunID,
		result.StartedAt.UnixMilli(), result.EndedAt.UnixMilli(),
		result.Success, result.Error, result.ItemsProcessed)
	if err != nil {
		return fmt.Errorf("append result for %s: %w", result.TaskID, err)
	}

	// Rows of the task that have at least keep newer rows are dropped.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM task_results WHERE task_id = ? AND id IN (
			SELECT r.id FROM task_results r
			WHERE r.task_id = ? AND (
				SELECT COUNT(*) FROM task_results n
				WHERE n.task_id = r.task_id
				  AND (n.started_at > r.started_at
				       OR (n.started_at = r.started_at AND n.id > r.id))
			) >= ?
		)`, result.TaskID, result.TaskID, max(keep, 0))
	if err != nil {
		return fmt.Errorf("prune history for %s: %w", result.TaskID, err)
	}

	return tx.Commit()
}

// History returns the newest results first. Results started in the same
// millisecond are ordered by insertion, newest first.
func (s *schedulerStore) History(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+resultColumns+` FROM task_results
		WHERE task_id = ?
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, taskID, limit)
	if err != nil {
		return nil, fmt.Errorf("task history %s: %w", taskID, err)
	}
	defer rows.Close()

	var results []domain.TaskResult
	for rows.Next() {
		var (
			r              domain.TaskResult
			started, ended int64
		)
		if err := rows.Scan(&r.TaskID, &r.RunID, &started, &ended, &r.Success, &r.Error, &r.ItemsProcessed); err != nil {
			return nil, fmt.Errorf("task history %s: %w", taskID, err)
		}
		r.StartedAt = time.UnixMilli(started).UTC()
		r.EndedAt = time.UnixMilli(ended).UTC()
		results = append(results, r)
	}
	return results, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.ScheduledTask, error) {
	var (
		task                       domain.ScheduledTask
		intervalMS                 int64
		lastRun, nextRun, lastGood sql.Null[int64]
	)

	err := row.Scan(&task.ID, &task.Name, &intervalMS, &lastRun, &nextRun, &task.LastError, &lastGood, &task.Enabled)
	if err != nil {
		return domain.ScheduledTask{}, err
	}

	task.Interval = time.Duration(intervalMS) * time.Millisecond
	task.LastRun = fromMillis(lastRun)
	task.NextRun = fromMillis(nextRun)
	task.LastSuccess = fromMillis(lastGood)
	return task, nil
}

// toMillis stores the zero time as NULL.
func toMillis(t time.Time) sql.Null[int64] {
	if t.IsZero() {
		return sql.Null[int64]{}
	}
	return sql.Null[int64]{V: t.UnixMilli(), Valid: true}
}

func fromMillis(v sql.Null[int64]) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return time.UnixMilli(v.V).UTC()
}
