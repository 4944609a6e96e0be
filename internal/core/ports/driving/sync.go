package driving

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// SyncOrchestrator runs the fetch, update and publish pipeline.
type SyncOrchestrator interface {
	// Run performs one sync. It never fails: every stage failure is recorded
	// in the returned result's Errors.
	Run(ctx context.Context) domain.SyncResult
}
