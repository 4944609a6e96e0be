package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/custodia-labs/roadmap-sync/internal/adapters/driven/auth"
	"github.com/custodia-labs/roadmap-sync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/roadmap-sync/internal/adapters/driven/exec"
	"github.com/custodia-labs/roadmap-sync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/roadmap-sync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/roadmap-sync/internal/adapters/driven/workspace"
	"github.com/custodia-labs/roadmap-sync/internal/adapters/driving/cli"
	"github.com/custodia-labs/roadmap-sync/internal/connectors"
	"github.com/custodia-labs/roadmap-sync/internal/connectors/filesystem"
	"github.com/custodia-labs/roadmap-sync/internal/connectors/github"
	"github.com/custodia-labs/roadmap-sync/internal/connectors/google"
	"github.com/custodia-labs/roadmap-sync/internal/connectors/google/docs"
	"github.com/custodia-labs/roadmap-sync/internal/connectors/google/sheets"
	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/core/services"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

// dataDirName holds the scheduler database inside the config directory.
const dataDirName = "data"

// buildRuntime wires the adapters for one command invocation.
func buildRuntime(ctx context.Context, configDir string) (*cli.Runtime, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg, err := file.LoadSyncConfig(store)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", store.Path(), err)
	}

	secrets, err := file.LoadEnv()
	if err != nil {
		return nil, err
	}

	orch := services.NewReloadableOrchestrator(newOrchestrator(ctx, cfg, secrets))

	schedStore, closeStore := openSchedulerStore(filepath.Join(store.Dir(), dataDirName))
	scheduler := services.NewScheduler(cfg.Schedule, schedStore, orch)

	return &cli.Runtime{
		ConfigPath: store.Path(),
		Config:     cfg,
		Values:     file.Values(cfg),
		Scheduler:  scheduler,
		Watch: func(ctx context.Context) error {
			return file.Watch(ctx, store, func(next domain.SyncConfig) {
				orch.Swap(newOrchestrator(ctx, next, secrets))
			})
		},
		Close: closeStore,
	}, nil
}

func newOrchestrator(ctx context.Context, cfg domain.SyncConfig, secrets file.Secrets) *services.SyncOrchestrator {
	var capability driven.SourceCapability
	router, err := newSourceRouter(ctx, cfg, secrets)
	if err != nil {
		logger.Warn("Source capability unavailable: %v", err)
	} else {
		capability = router
	}

	return services.NewSyncOrchestrator(cfg, capability, workspace.New(cfg.RepoPath), exec.NewRunner())
}

func newSourceRouter(ctx context.Context, cfg domain.SyncConfig, secrets file.Secrets) (*connectors.Router, error) {
	provider := auth.GoogleProvider(secrets.GoogleAPIKey, secrets.GoogleToken)

	sheetsSvc, err := google.NewSheetsService(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	return &connectors.Router{
		Sheets: sheets.New(sheetsSvc, cfg.Delimiter),
		Docs:   docs.New(driveSvc),
		GitHub: github.NewClient(auth.GitHubProvider(secrets.GitHubToken)),
		Files:  filesystem.New(osfs.New(cfg.RepoPath)),
	}, nil
}

// openSchedulerStore opens the SQLite store, falling back to an in-memory
// store that loses history on exit.
func openSchedulerStore(dataDir string) (driven.SchedulerStore, func() error) {
	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Scheduler store unavailable, keeping history in memory: %v", err)
		return memory.NewSchedulerStore(), func() error { return nil }
	}
	return db.SchedulerStore(), db.Close
}
