package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driving"
)

// Ensure ReloadableOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*ReloadableOrchestrator)(nil)

// ReloadableOrchestrator delegates to a swappable orchestrator.
// A run in progress keeps the orchestrator it started with.
type ReloadableOrchestrator struct {
	current atomic.Pointer[orchestratorHolder]
}

type orchestratorHolder struct {
	orch driving.SyncOrchestrator
}

// NewReloadableOrchestrator wraps an initial orchestrator.
func NewReloadableOrchestrator(initial driving.SyncOrchestrator) *ReloadableOrchestrator {
	r := &ReloadableOrchestrator{}
	r.Swap(initial)
	return r
}

// Swap replaces the orchestrator used by subsequent runs.
func (r *ReloadableOrchestrator) Swap(orch driving.SyncOrchestrator) {
	r.current.Store(&orchestratorHolder{orch: orch})
}

// Run delegates to the current orchestrator.
func (r *ReloadableOrchestrator) Run(ctx context.Context) domain.SyncResult {
	holder := r.current.Load()
	if holder == nil || holder.orch == nil {
		result := domain.NewSyncResult("", time.Now().UTC())
		result.AddError(domain.ErrSourceUnavailable)
		return result
	}
	return holder.orch.Run(ctx)
}
