package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// writeResult prints a sync result as indented JSON or as a styled summary.
func writeResult(w io.Writer, result domain.SyncResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, err := io.WriteString(w, summary(result, newStyles()))
	return err
}

func summary(result domain.SyncResult, st styles) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", st.Title.Render("Sync run "+result.RunID),
		st.Muted.Render(result.Timestamp.Format(time.RFC3339)))

	for _, name := range []string{domain.SourceSpreadsheet, domain.SourceDocuments} {
		status, ok := result.Sources[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s%s (%d)\n", st.Label.Render(name), stateStyle(st, status.Status).Render(string(status.Status)), status.Count)
	}

	files := "none"
	if len(result.FilesUpdated) > 0 {
		files = strings.Join(result.FilesUpdated, ", ")
	}
	fmt.Fprintf(&b, "%s%s\n", st.Label.Render("files"), files)

	commit := st.Muted.Render("no")
	if result.Git.Committed {
		commit = st.Success.Render("yes")
	}
	fmt.Fprintf(&b, "%s%s\n", st.Label.Render("committed"), commit)

	if len(result.Git.PushedRemotes) > 0 {
		fmt.Fprintf(&b, "%s%s\n", st.Label.Render("pushed"), pushedRemotes(result.Git.PushedRemotes, st))
	}

	if result.Succeeded() {
		fmt.Fprintf(&b, "%s\n", st.Success.Render("No errors"))
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", st.Error.Render(fmt.Sprintf("%d error(s)", len(result.Errors))))
	for _, entry := range result.Errors {
		fmt.Fprintf(&b, "  - %s\n", entry)
	}
	return b.String()
}

func stateStyle(st styles, state domain.SourceState) lipgloss.Style {
	switch state {
	case domain.SourceSuccess:
		return st.Success
	case domain.SourcePartial:
		return st.Warning
	default:
		return st.Error
	}
}

// pushedRemotes lists remotes alphabetically with their push outcome.
func pushedRemotes(remotes map[string]bool, st styles) string {
	names := make([]string, 0, len(remotes))
	for name := range remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if remotes[name] {
			parts = append(parts, st.Success.Render(name+" ok"))
		} else {
			parts = append(parts, st.Error.Render(name+" failed"))
		}
	}
	return strings.Join(parts, ", ")
}
