package driven

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// SourceCapability is the injected access to the remote data providers.
// Implementations perform no retries; callers decide how to treat failure.
type SourceCapability interface {
	// FetchSpreadsheet returns the named sheet as delimited text.
	FetchSpreadsheet(ctx context.Context, spreadsheetID, sheetName string) (string, error)

	// FetchDocument returns a project-tracking document by ID.
	FetchDocument(ctx context.Context, documentID string) (domain.RawDocument, error)
}
