package domain

// CommandResult holds the captured output of an external command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
