package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	runTimeout time.Duration
	runJSON    bool
	runStrict  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one sync now",
	Long: `Fetches the roadmap sheet and project documents, updates the target
files, then commits and pushes them. The run result is printed as a summary
on a terminal and as JSON otherwise.

Failures are reported in the result. Use --strict to exit non-zero when the
result contains errors.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "abort the run after this duration (0 disables)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the result as JSON")
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "exit non-zero if the run recorded errors")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := cmd.Context()
	if runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runTimeout)
		defer cancel()
	}

	result, err := rt.Scheduler.RunNow(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := writeResult(out, result, runJSON || !isTerminal(out)); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if runStrict && !result.Succeeded() {
		return fmt.Errorf("sync finished with %d error(s)", len(result.Errors))
	}
	return nil
}
