package connectors

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// Document ID prefixes.
const (
	PrefixGitHub    = "github:"
	PrefixFile      = "file:"
	PrefixGoogleDoc = "gdoc:"
)

// Ensure Router implements the SourceCapability interface.
var _ driven.SourceCapability = (*Router)(nil)

// SpreadsheetFetcher reads a sheet as delimited text.
type SpreadsheetFetcher interface {
	FetchSpreadsheet(ctx context.Context, spreadsheetID, sheetName string) (string, error)
}

// DocumentFetcher reads one document.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, documentID string) (domain.RawDocument, error)
}

// Router dispatches fetches to the adapter that owns the ID.
// A nil adapter makes its IDs fail with domain.ErrSourceUnavailable.
type Router struct {
	Sheets SpreadsheetFetcher
	Docs   DocumentFetcher
	GitHub DocumentFetcher
	Files  DocumentFetcher
}

// FetchSpreadsheet implements driven.SourceCapability.
func (r *Router) FetchSpreadsheet(ctx context.Context, spreadsheetID, sheetName string) (string, error) {
	if r.Sheets == nil {
		return "", fmt.Errorf("spreadsheet %s: %w", spreadsheetID, domain.ErrSourceUnavailable)
	}
	return r.Sheets.FetchSpreadsheet(ctx, spreadsheetID, sheetName)
}

// FetchDocument implements driven.SourceCapability.
func (r *Router) FetchDocument(ctx context.Context, documentID string) (domain.RawDocument, error) {
	fetcher, id, kind := r.route(documentID)
	if fetcher == nil {
		return domain.RawDocument{}, fmt.Errorf("%s document %s: %w", kind, documentID, domain.ErrSourceUnavailable)
	}
	return fetcher.FetchDocument(ctx, id)
}

func (r *Router) route(documentID string) (DocumentFetcher, string, string) {
	switch {
	case strings.HasPrefix(documentID, PrefixGitHub):
		return r.GitHub, documentID, "github"
	case strings.HasPrefix(documentID, PrefixFile):
		return r.Files, strings.TrimPrefix(documentID, PrefixFile), "file"
	default:
		return r.Docs, strings.TrimPrefix(documentID, PrefixGoogleDoc), "google"
	}
}
