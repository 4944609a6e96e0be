package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driving"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
	"github.com/custodia-labs/roadmap-sync/internal/roadmap"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*SyncOrchestrator)(nil)

// errNoRecords is recorded when the file update stage is skipped.
var errNoRecords = errors.New("update files: skipped, no roadmap records available")

// SyncOrchestrator runs FetchSheet, FetchDocuments, UpdateFiles and Publish
// in sequence. Stage failures are recorded in the result, never returned.
type SyncOrchestrator struct {
	cfg       domain.SyncConfig
	source    *SourceClient
	updater   *FileUpdater
	publisher *Publisher

	now   func() time.Time
	newID func() string
}

// NewSyncOrchestrator creates an orchestrator for cfg.
// Any of capability, files and runner may be nil; the affected stage then
// fails and the failure is recorded in the run result.
func NewSyncOrchestrator(
	cfg domain.SyncConfig,
	capability driven.SourceCapability,
	files driven.FileStore,
	runner driven.CommandRunner,
) *SyncOrchestrator {
	repoDir := cfg.RepoPath
	if files != nil {
		repoDir = files.Root()
	}

	return &SyncOrchestrator{
		cfg:       cfg,
		source:    NewSourceClient(capability),
		updater:   NewFileUpdater(files),
		publisher: NewPublisher(runner, repoDir, cfg.Remotes, cfg.CommitTrailer),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// sheetStage is the outcome of FetchSheet.
type sheetStage struct {
	records []domain.RoadmapRecord
	status  domain.SourceStatus
	err     error
}

// documentsStage is the outcome of FetchDocuments.
type documentsStage struct {
	documents []domain.ProjectDocument
	status    domain.SourceStatus
	errs      []error
}

// filesStage is the outcome of UpdateFiles.
type filesStage struct {
	outcomes []domain.FileOutcome
	err      error
}

// publishStage is the outcome of Publish.
type publishStage struct {
	git domain.GitOutcome
	err error
}

// Run performs one sync and returns its fully populated result.
func (o *SyncOrchestrator) Run(ctx context.Context) domain.SyncResult {
	result := domain.NewSyncResult(o.newID(), o.now().UTC())
	logger.Debug("Starting sync run %s", result.RunID)

	sheet := guard(&result, "fetch sheet", sheetStage{
		status: domain.SourceStatus{Status: domain.SourceFailed},
	}, func() sheetStage {
		return o.fetchSheet(ctx)
	})
	result.Sources[domain.SourceSpreadsheet] = sheet.status
	result.AddError(sheet.err)

	docs := guard(&result, "fetch documents", documentsStage{
		status: domain.SourceStatus{Status: domain.SourceFailed},
	}, func() documentsStage {
		return o.fetchDocuments(ctx)
	})
	result.Sources[domain.SourceDocuments] = docs.status
	for _, doc := range docs.documents {
		result.Documents = append(result.Documents, doc.Ref())
	}
	for _, err := range docs.errs {
		result.AddError(err)
	}

	files := guard(&result, "update files", filesStage{}, func() filesStage {
		return o.updateFiles(ctx, sheet.records)
	})
	result.AddError(files.err)
	for _, outcome := range files.outcomes {
		if outcome.Err != nil {
			result.AddError(outcome.Err)
			continue
		}
		result.FilesUpdated = append(result.FilesUpdated, outcome.Path)
	}

	published := guard(&result, "publish", publishStage{
		git: domain.GitOutcome{PushedRemotes: map[string]bool{}},
	}, func() publishStage {
		return o.publish(ctx, result.FilesUpdated)
	})
	result.Git = published.git
	result.AddError(published.err)

	logger.Debug("Sync run %s finished with %d error(s)", result.RunID, len(result.Errors))
	return result
}

func (o *SyncOrchestrator) fetchSheet(ctx context.Context) sheetStage {
	logger.Section("Fetch Sheet")

	raw, err := o.source.FetchSpreadsheet(ctx, o.cfg.SpreadsheetID, o.cfg.SheetName)
	if err != nil {
		logger.Warn("Spreadsheet fetch failed: %v", err)
		return sheetStage{
			status: domain.SourceStatus{Status: domain.SourceFailed},
			err:    fmt.Errorf("fetch sheet: %w", err),
		}
	}

	delim := o.cfg.Delimiter
	if delim == 0 {
		delim = domain.DefaultDelimiter
	}

	records := roadmap.Parse(raw, delim)
	logger.Info("Parsed %d roadmap record(s)", len(records))

	return sheetStage{
		records: records,
		status:  domain.SourceStatus{Status: domain.SourceSuccess, Count: len(records)},
	}
}

// fetchDocuments fetches every configured document with bounded concurrency.
// Documents are collected in completion order.
func (o *SyncOrchestrator) fetchDocuments(ctx context.Context) documentsStage {
	logger.Section("Fetch Documents")

	ids := o.cfg.DocumentIDs
	stage := documentsStage{documents: []domain.ProjectDocument{}}

	limit := o.cfg.DocumentConcurrency
	if limit <= 0 {
		limit = domain.DefaultDocumentConcurrency
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(limit)

	for _, id := range ids {
		g.Go(func() error {
			doc, err := o.fetchDocument(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("Document %s fetch failed: %v", id, err)
				stage.errs = append(stage.errs, fmt.Errorf("fetch document: %w", err))
				return nil
			}
			logger.Info("Fetched document %s (%s)", id, doc.Title)
			stage.documents = append(stage.documents, doc)
			return nil
		})
	}
	_ = g.Wait()

	stage.status = domain.SourceStatus{
		Status: documentsState(len(ids), len(stage.documents)),
		Count:  len(stage.documents),
	}
	return stage
}

// fetchDocument converts a panic inside one fetch into an error for that id.
func (o *SyncOrchestrator) fetchDocument(ctx context.Context, id string) (doc domain.ProjectDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.FetchError{ID: id, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	return o.source.FetchDocument(ctx, id)
}

func documentsState(requested, fetched int) domain.SourceState {
	switch {
	case fetched == requested:
		return domain.SourceSuccess
	case fetched == 0:
		return domain.SourceFailed
	default:
		return domain.SourcePartial
	}
}

func (o *SyncOrchestrator) updateFiles(ctx context.Context, records []domain.RoadmapRecord) filesStage {
	logger.Section("Update Files")

	if len(records) == 0 {
		logger.Warn("No roadmap records, leaving target files untouched")
		return filesStage{err: errNoRecords}
	}

	return filesStage{outcomes: o.updater.Update(ctx, o.cfg.Targets, records)}
}

func (o *SyncOrchestrator) publish(ctx context.Context, paths []string) publishStage {
	logger.Section("Publish")

	git, err := o.publisher.Publish(ctx, paths)
	if err != nil {
		return publishStage{git: git, err: fmt.Errorf("publish: %w", err)}
	}
	return publishStage{git: git}
}

// guard runs a stage, turning a panic into an error entry and the fallback.
func guard[T any](result *domain.SyncResult, stage string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Stage %q panicked: %v", stage, r)
			result.AddError(fmt.Errorf("%s: panic: %v", stage, r))
			out = fallback
		}
	}()
	return fn()
}
