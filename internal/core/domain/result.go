package domain

import "time"

// Source names used as keys in SyncResult.Sources.
const (
	SourceSpreadsheet = "spreadsheet"
	SourceDocuments   = "documents"
)

// SourceState summarises how a source stage ended.
type SourceState string

const (
	// SourceSuccess means every fetch succeeded.
	SourceSuccess SourceState = "success"

	// SourcePartial means some document fetches failed.
	SourcePartial SourceState = "partial"

	// SourceFailed means nothing usable was fetched.
	SourceFailed SourceState = "failed"
)

// SourceStatus is the per-source entry of a SyncResult.
type SourceStatus struct {
	Status SourceState `json:"status"`
	Count  int         `json:"count"`
}

// GitOutcome records which publish steps completed.
type GitOutcome struct {
	Committed bool `json:"committed"`

	// PushedRemotes holds true for each remote pushed successfully and false
	// for the remote whose push failed. Remotes never attempted are absent.
	PushedRemotes map[string]bool `json:"pushedRemotes"`

	// Error describes the step that aborted publishing, if any.
	Error string `json:"error,omitempty"`
}

// SyncResult is the only externally observable output of a run.
// It is always fully populated, including on partial failure.
type SyncResult struct {
	RunID        string                  `json:"runId"`
	Timestamp    time.Time               `json:"timestamp"`
	Sources      map[string]SourceStatus `json:"sources"`
	Documents    []DocumentRef           `json:"documents"`
	FilesUpdated []string                `json:"filesUpdated"`
	Git          GitOutcome              `json:"gitOutcome"`
	Errors       []string                `json:"errors"`
}

// NewSyncResult returns an empty result with every collection initialised.
func NewSyncResult(runID string, ts time.Time) SyncResult {
	return SyncResult{
		RunID:        runID,
		Timestamp:    ts,
		Sources:      make(map[string]SourceStatus),
		Documents:    []DocumentRef{},
		FilesUpdated: []string{},
		Git:          GitOutcome{PushedRemotes: map[string]bool{}},
		Errors:       []string{},
	}
}

// Succeeded reports whether the run completed without recording any error.
func (r *SyncResult) Succeeded() bool {
	return len(r.Errors) == 0
}

// AddError appends an error entry.
func (r *SyncResult) AddError(err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err.Error())
}
