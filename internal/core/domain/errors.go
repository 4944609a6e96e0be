package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSyncInProgress indicates a sync is already running.
	ErrSyncInProgress = errors.New("sync in progress")

	// ErrUnsupportedRendering indicates an unknown section rendering kind.
	ErrUnsupportedRendering = errors.New("unsupported rendering")

	// Source Errors.

	// ErrSourceUnavailable indicates the source capability was never initialised.
	// It is fatal to the stage that needs the source, not to the run.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrFetchFailed indicates a single remote fetch failed.
	ErrFetchFailed = errors.New("fetch failed")

	// File Errors.

	// ErrFileUnreadable indicates a target file is missing or cannot be read.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrFileUnwritable indicates a patched target file could not be written.
	ErrFileUnwritable = errors.New("file unwritable")

	// ErrPatternNotFound indicates the generated region was not located.
	// The target file is left untouched.
	ErrPatternNotFound = errors.New("generated region not found")

	// Publish Errors.

	// ErrPublishStepFailed indicates a stage, commit or push step failed.
	ErrPublishStepFailed = errors.New("publish step failed")
)

// FetchError records a failed fetch of a single spreadsheet or document.
type FetchError struct {
	ID    string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.ID, e.Cause)
}

// Unwrap exposes both the cause and ErrFetchFailed to errors.Is.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Cause}
}

// PublishStep names one external invocation of the publisher.
type PublishStep string

// Publish steps in execution order. Push steps are suffixed with the remote name.
const (
	PublishStepStage  PublishStep = "stage"
	PublishStepCommit PublishStep = "commit"
	PublishStepPush   PublishStep = "push"
)

// PublishStepError records the publish step that aborted publishing.
type PublishStepError struct {
	Step   PublishStep
	Remote string
	Cause  error
}

func (e *PublishStepError) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("%s %s: %v", e.Step, e.Remote, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Cause)
}

// Unwrap exposes both the cause and ErrPublishStepFailed to errors.Is.
func (e *PublishStepError) Unwrap() []error {
	return []error{ErrPublishStepFailed, e.Cause}
}

// CommandError reports an external command that exited unsuccessfully.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}
