package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

// gitBinary is the version-control command-line tool.
const gitBinary = "git"

// Publisher stages, commits and pushes changed files.
// Every step is a separate process; the first failure aborts the rest.
type Publisher struct {
	runner  driven.CommandRunner
	repoDir string
	remotes []domain.Remote
	trailer string
	now     func() time.Time
}

// NewPublisher creates a publisher for the repository at repoDir.
// Remotes are pushed in the given order.
func NewPublisher(runner driven.CommandRunner, repoDir string, remotes []domain.Remote, trailer string) *Publisher {
	return &Publisher{
		runner:  runner,
		repoDir: repoDir,
		remotes: append([]domain.Remote(nil), remotes...),
		trailer: trailer,
		now:     time.Now,
	}
}

// Publish commits paths and pushes to each remote.
// With no paths nothing is executed. Paths are staged on every call and the
// commit covers the ones that differ from HEAD; with none staged the commit
// and pushes are skipped. The outcome always reflects exactly the
// steps that completed; the returned error is a *domain.PublishStepError.
func (p *Publisher) Publish(ctx context.Context, paths []string) (domain.GitOutcome, error) {
	outcome := domain.GitOutcome{PushedRemotes: map[string]bool{}}

	if len(paths) == 0 {
		logger.Info("No files to commit")
		return outcome, nil
	}

	fail := func(err *domain.PublishStepError) (domain.GitOutcome, error) {
		outcome.Error = err.Error()
		logger.Warn("Git operation failed: %v", err)
		return outcome, err
	}

	if p.runner == nil {
		return fail(&domain.PublishStepError{
			Step:  domain.PublishStepStage,
			Cause: fmt.Errorf("no command runner configured"),
		})
	}

	addArgs := append([]string{"add"}, paths...)
	if _, err := p.runner.Run(ctx, p.repoDir, gitBinary, addArgs...); err != nil {
		return fail(&domain.PublishStepError{Step: domain.PublishStepStage, Cause: err})
	}

	staged, err := p.staged(ctx, paths)
	if err != nil {
		return fail(&domain.PublishStepError{Step: domain.PublishStepStage, Cause: err})
	}
	if len(staged) == 0 {
		logger.Info("Working tree matches HEAD, nothing to commit")
		return outcome, nil
	}

	message := CommitMessage(staged, p.now(), p.trailer)
	if _, err := p.runner.Run(ctx, p.repoDir, gitBinary, "commit", "-m", message); err != nil {
		return fail(&domain.PublishStepError{Step: domain.PublishStepCommit, Cause: err})
	}
	outcome.Committed = true
	logger.Info("Changes committed")

	for _, remote := range p.remotes {
		if _, err := p.runner.Run(ctx, p.repoDir, gitBinary, "push", remote.Name, remote.Refspec); err != nil {
			outcome.PushedRemotes[remote.Name] = false
			return fail(&domain.PublishStepError{Step: domain.PublishStepPush, Remote: remote.Name, Cause: err})
		}
		outcome.PushedRemotes[remote.Name] = true
		logger.Info("Pushed to %s (%s)", remote.Name, remote.Refspec)
	}

	return outcome, nil
}

// staged lists the paths whose index content differs from HEAD.
func (p *Publisher) staged(ctx context.Context, paths []string) ([]string, error) {
	args := append([]string{"diff", "--cached", "--name-only", "--"}, paths...)
	res, err := p.runner.Run(ctx, p.repoDir, gitBinary, args...)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}

	var staged []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			staged = append(staged, line)
		}
	}
	return staged, nil
}

// CommitMessage builds the commit message for a sync of paths at ts.
func CommitMessage(paths []string, ts time.Time, trailer string) string {
	var b strings.Builder

	b.WriteString("chore: auto-sync roadmap data from internal sources\n\n")
	fmt.Fprintf(&b, "Updated %d file(s):\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(&b, "- %s\n", path)
	}
	fmt.Fprintf(&b, "\nSynced at: %s", ts.UTC().Format(time.RFC3339))

	if trailer = strings.TrimSpace(trailer); trailer != "" {
		b.WriteString("\n\n")
		b.WriteString(trailer)
	}

	return b.String()
}
