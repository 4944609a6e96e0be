// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SourceCapability: Fetches the roadmap sheet and project documents
//   - FileStore: Reads and writes target files in the repository
//   - CommandRunner: Runs the version-control command-line tool
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - SchedulerStore: Task state and run history. Only needed by the scheduler.
//   - TokenProvider: Access tokens for authenticated connectors.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
