// Package cli implements the roadmap-sync command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "roadmap-sync",
	Short: "Sync roadmap data into the repository",
	Long: `roadmap-sync reads the roadmap spreadsheet and project documents,
rewrites the generated regions of the configured source files, and commits
and pushes the changes.

Run it once with "run" or keep it running with "schedule".`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.roadmap-sync)")
}

// Execute runs the root command with the given build version.
func Execute(ctx context.Context, buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.ExecuteContext(ctx)
}
