package services

import (
	"context"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// SourceClient wraps the injected source capability with typed errors.
// It performs no retries.
type SourceClient struct {
	capability driven.SourceCapability
}

// NewSourceClient creates a source client. A nil capability is allowed;
// every call then fails with domain.ErrSourceUnavailable.
func NewSourceClient(capability driven.SourceCapability) *SourceClient {
	return &SourceClient{capability: capability}
}

// Available reports whether a capability has been injected.
func (c *SourceClient) Available() bool {
	return c != nil && c.capability != nil
}

// FetchSpreadsheet returns the named sheet as delimited text.
func (c *SourceClient) FetchSpreadsheet(ctx context.Context, spreadsheetID, sheetName string) (string, error) {
	if !c.Available() {
		return "", domain.ErrSourceUnavailable
	}

	raw, err := c.capability.FetchSpreadsheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return "", &domain.FetchError{ID: spreadsheetID, Cause: err}
	}
	return raw, nil
}

// FetchDocument returns the project document for documentID.
func (c *SourceClient) FetchDocument(ctx context.Context, documentID string) (domain.ProjectDocument, error) {
	if !c.Available() {
		return domain.ProjectDocument{}, domain.ErrSourceUnavailable
	}

	raw, err := c.capability.FetchDocument(ctx, documentID)
	if err != nil {
		return domain.ProjectDocument{}, &domain.FetchError{ID: documentID, Cause: err}
	}

	return domain.ProjectDocument{
		ProjectID: documentID,
		Title:     raw.Title,
		Content:   raw.Content,
		URL:       raw.URL,
	}, nil
}
