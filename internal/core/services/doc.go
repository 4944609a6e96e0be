// Package services implements the driving port interfaces.
//
// The SyncOrchestrator runs one sync through the SourceClient, FileUpdater
// and Publisher; the Scheduler repeats it on an interval and records the
// history. Services reach infrastructure only through driven ports.
package services
