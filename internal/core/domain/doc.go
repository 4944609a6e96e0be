// Package domain defines the core business entities for roadmap-sync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RoadmapRecord: A (country, launch date) pair parsed from the roadmap sheet
//   - ProjectDocument: A project-tracking document fetched by ID
//   - TargetFile: A source file holding a generated region
//   - SyncResult: The structured outcome of one sync run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
