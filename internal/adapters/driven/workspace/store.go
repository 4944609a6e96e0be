// Package workspace provides file access to the target repository working tree.
package workspace

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.FileStore = (*Store)(nil)

// defaultPerm is used when a written file does not exist yet.
const defaultPerm os.FileMode = 0o644

// Store implements driven.FileStore on a billy filesystem.
// Paths are relative to the filesystem root.
type Store struct {
	fs   billy.Filesystem
	root string
}

// New creates a store rooted at the directory root on disk.
func New(root string) *Store {
	return &Store{
		fs:   osfs.New(root),
		root: root,
	}
}

// NewFromFilesystem creates a store over an existing billy filesystem.
// root is reported by Root and used as the repository directory.
func NewFromFilesystem(fs billy.Filesystem, root string) *Store {
	return &Store{fs: fs, root: root}
}

// ReadFile returns the full contents of path.
func (s *Store) ReadFile(path string) (string, error) {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("workspace: read %q: %w", path, err)
	}
	return string(data), nil
}

// WriteFile replaces the contents of path, keeping its permissions.
func (s *Store) WriteFile(path, content string) error {
	perm := defaultPerm
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := util.WriteFile(s.fs, path, []byte(content), perm); err != nil {
		return fmt.Errorf("workspace: write %q: %w", path, err)
	}
	return nil
}

// Root returns the repository directory.
func (s *Store) Root() string {
	return s.root
}

// Filesystem returns the underlying billy filesystem.
//
//nolint:ireturn // exposes the adapter target
func (s *Store) Filesystem() billy.Filesystem {
	return s.fs
}
