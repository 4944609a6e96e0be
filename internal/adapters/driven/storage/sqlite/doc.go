// Package sqlite keeps the scheduler's task row and run history in a
// pure-Go SQLite database (modernc.org/sqlite, no cgo).
//
// The schema lives in migrations/ as numbered .up.sql/.down.sql pairs that
// are embedded into the binary and applied on open. Timestamps are stored as
// Unix milliseconds.
package sqlite
