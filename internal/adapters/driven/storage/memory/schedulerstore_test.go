package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

func TestSchedulerStore_Task(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()

	task, err := store.Task(ctx, domain.TaskIDRoadmapSync)
	require.NoError(t, err)
	assert.Nil(t, task)

	assert.ErrorIs(t, store.SaveTask(ctx, nil), domain.ErrInvalidInput)
	require.NoError(t, store.SaveTask(ctx, &domain.ScheduledTask{ID: domain.TaskIDRoadmapSync, Interval: time.Hour}))

	task, err = store.Task(ctx, domain.TaskIDRoadmapSync)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, time.Hour, task.Interval)
}

func TestSchedulerStore_Task_ReturnsCopy(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()
	require.NoError(t, store.SaveTask(ctx, &domain.ScheduledTask{ID: "a", Name: "original"}))

	task, err := store.Task(ctx, "a")
	require.NoError(t, err)
	task.Name = "changed"

	again, err := store.Task(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Name)
}

func TestSchedulerStore_AppendResult_KeepsNewest(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.AppendResult(ctx, domain.TaskResult{TaskID: domain.TaskIDRoadmapSync, ItemsProcessed: i}, 3))
	}
	require.NoError(t, store.AppendResult(ctx, domain.TaskResult{TaskID: "other"}, 3))

	history, err := store.History(ctx, domain.TaskIDRoadmapSync, 100)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []int{5, 4, 3}, []int{history[0].ItemsProcessed, history[1].ItemsProcessed, history[2].ItemsProcessed})

	history, err = store.History(ctx, domain.TaskIDRoadmapSync, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	other, err := store.History(ctx, "other", 100)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestSchedulerStore_History_Empty(t *testing.T) {
	history, err := NewSchedulerStore().History(context.Background(), domain.TaskIDRoadmapSync, 10)

	require.NoError(t, err)
	assert.Empty(t, history)
}
