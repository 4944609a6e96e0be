package driven

// FileStore reads and writes whole text files relative to the repository root.
type FileStore interface {
	// ReadFile returns the full contents of path.
	ReadFile(path string) (string, error)

	// WriteFile replaces the contents of path.
	WriteFile(path, content string) error

	// Root returns the directory paths are resolved against.
	Root() string
}
