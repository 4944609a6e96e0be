package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

var scheduleJSON bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the sync periodically",
	Long: `Runs the sync on the configured interval until interrupted. The next run
time and the run history are stored, so a restart resumes the schedule.
Edits to the configuration file apply from the next run.`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().BoolVar(&scheduleJSON, "json", false, "print each result as JSON")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger.SetTimestamps(true)
	defer logger.SetTimestamps(false)

	out := cmd.OutOrStdout()
	asJSON := scheduleJSON || !isTerminal(out)
	rt.Scheduler.OnResult(func(result domain.SyncResult) {
		if err := writeResult(out, result, asJSON); err != nil {
			logger.Warn("Failed to write result: %v", err)
		}
	})

	if rt.Watch != nil {
		go func() {
			if err := rt.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Config reload stopped: %v", err)
			}
		}()
	}

	if !asJSON {
		fmt.Fprintf(out, "Scheduling roadmap sync every %s (config: %s)\n", rt.Config.Schedule.Interval, rt.ConfigPath)
	}

	err = rt.Scheduler.Start(ctx)
	if stopErr := rt.Scheduler.Stop(); stopErr != nil {
		logger.Warn("Scheduler stop: %v", stopErr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}
