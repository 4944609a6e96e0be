// Package exec runs external commands for the publisher.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

// Verify interface compliance.
var _ driven.CommandRunner = (*Runner)(nil)

// Runner implements driven.CommandRunner with os/exec.
// Commands never read stdin and never prompt for credentials.
type Runner struct {
	env []string
}

// NewRunner creates a runner. env entries (KEY=VALUE) are appended to the
// current process environment of every command.
func NewRunner(env ...string) *Runner {
	return &Runner{env: env}
}

// Run executes name with args in dir and captures its output.
// A non-zero exit returns a *domain.CommandError together with the result.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) (*domain.CommandResult, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Env = append(cmd.Env, r.env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("exec: %s %s (in %s)", name, strings.Join(args, " "), dir)

	err := cmd.Run()
	result := &domain.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(cmd, err),
	}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		err = errors.Join(ctxErr, err)
	}

	return result, &domain.CommandError{
		Command:  commandLine(name, args),
		ExitCode: result.ExitCode,
		Stderr:   result.Stderr,
		Cause:    err,
	}
}

func exitCode(cmd *osexec.Cmd, err error) int {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

// commandLine renders the command for error messages. Long argument lists
// (such as commit messages) are cut to their first line.
func commandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if i := strings.IndexByte(arg, '\n'); i >= 0 {
			arg = arg[:i] + "..."
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
