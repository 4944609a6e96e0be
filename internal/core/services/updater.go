package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
	"github.com/custodia-labs/roadmap-sync/internal/region"
	"github.com/custodia-labs/roadmap-sync/internal/roadmap"
)

// FileUpdater rewrites the generated region of each target file.
// A failure is reported for that file only; it never stops the others.
type FileUpdater struct {
	files driven.FileStore
}

// NewFileUpdater creates a file updater over a file store.
func NewFileUpdater(files driven.FileStore) *FileUpdater {
	return &FileUpdater{files: files}
}

// Update patches every target in order and reports one outcome per target.
func (u *FileUpdater) Update(
	ctx context.Context,
	targets []domain.TargetFile,
	records []domain.RoadmapRecord,
) []domain.FileOutcome {
	outcomes := make([]domain.FileOutcome, 0, len(targets))

	for _, target := range targets {
		outcome := domain.FileOutcome{
			LogicalName: target.LogicalName,
			Path:        target.Path,
		}

		if err := ctx.Err(); err != nil {
			outcome.Err = err
		} else {
			outcome.Changed, outcome.Err = u.updateOne(target, records)
		}

		switch {
		case outcome.Err != nil:
			logger.Warn("Failed to update %s: %v", target.Path, outcome.Err)
		case outcome.Changed:
			logger.Info("Updated %s", target.Path)
		default:
			logger.Info("%s already up to date", target.Path)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// updateOne runs read, render, patch and write for a single target.
// The file is written only when the patched text differs.
func (u *FileUpdater) updateOne(target domain.TargetFile, records []domain.RoadmapRecord) (bool, error) {
	if u.files == nil {
		return false, fmt.Errorf("%w: %s: no file store configured", domain.ErrFileUnreadable, target.Path)
	}

	content, err := u.files.ReadFile(target.Path)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", domain.ErrFileUnreadable, target.Path, err)
	}

	section, err := roadmap.Render(target.Rendering, records)
	if err != nil {
		return false, fmt.Errorf("%s: %w", target.Path, err)
	}

	pattern, err := region.Compile(target.Pattern)
	if err != nil {
		return false, fmt.Errorf("%s: %w", target.Path, err)
	}

	patched, err := pattern.Patch(content, section)
	if err != nil {
		return false, fmt.Errorf("%s: %w", target.Path, err)
	}

	if patched == content {
		return false, nil
	}

	if err := u.files.WriteFile(target.Path, patched); err != nil {
		return false, fmt.Errorf("%w: %s: %w", domain.ErrFileUnwritable, target.Path, err)
	}

	return true, nil
}
