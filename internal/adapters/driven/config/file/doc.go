// Package file provides the file-based configuration adapter.
//
// Adapters:
//   - ConfigStore: TOML configuration file with dot-notation keys
//   - LoadSyncConfig: builds the immutable domain.SyncConfig
//   - LoadEnv: secrets from the process environment
//   - Watch: reloads configuration when the file changes
package file
