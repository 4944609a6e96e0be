// Package filesystem reads project documents from local text files.
package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// Source serves documents from a filesystem.
type Source struct {
	fs billy.Filesystem
}

// New creates a source over fs. Relative paths resolve against its root.
func New(fs billy.Filesystem) *Source {
	return &Source{fs: fs}
}

// FetchDocument reads path. The title is the first markdown heading if the
// file has one, otherwise the file name without extension.
func (s *Source) FetchDocument(_ context.Context, path string) (domain.RawDocument, error) {
	path = strings.TrimPrefix(path, "//")
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("%w: read %s: %w", domain.ErrFetchFailed, path, err)
	}

	content := string(data)
	return domain.RawDocument{
		Title:   title(path, content),
		Content: content,
		URL:     "file://" + s.fs.Join(s.fs.Root(), path),
	}, nil
}

// title returns the first level-one heading outside fenced code blocks.
func title(path, content string) string {
	fenced := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") {
			fenced = !fenced
			continue
		}
		if fenced {
			continue
		}
		if heading, ok := strings.CutPrefix(line, "# "); ok {
			if heading = strings.TrimSpace(heading); heading != "" {
				return heading
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
