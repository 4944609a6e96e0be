// Package logger provides the progress log of roadmap-sync.
//
// Debug, Info and Section only print in verbose mode (--verbose). Warn always
// prints, since a scheduled run has nobody watching it. Long-running
// commands enable timestamps so interleaved runs can be told apart.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	now                  = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetTimestamps prefixes every line with the local time when enabled.
func SetTimestamps(on bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = on
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	logf(false, "DEBUG", format, args...)
}

// Info prints a message in verbose mode.
func Info(format string, args ...any) {
	logf(false, "INFO", format, args...)
}

// Warn prints a message regardless of verbose mode.
func Warn(format string, args ...any) {
	logf(true, "WARN", format, args...)
}

// Section prints a stage header in verbose mode.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n%s=== %s ===\n", stamp(), name)
	}
}

func logf(always bool, level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !always && !verbose {
		return
	}
	fmt.Fprintf(output, "%s[%s] %s\n", stamp(), level, fmt.Sprintf(format, args...))
}

// stamp must be called with mu held.
func stamp() string {
	if !timestamps {
		return ""
	}
	return now().Format("2006-01-02T15:04:05") + " "
}
