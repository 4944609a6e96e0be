package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print the history as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := cmd.Context()
	results, err := rt.Scheduler.History(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	st := newStyles()

	task, err := rt.Scheduler.Task(ctx)
	if err != nil {
		return fmt.Errorf("load task: %w", err)
	}
	if task != nil && !task.NextRun.IsZero() {
		fmt.Fprintf(out, "%s %s\n", st.Label.Render("next run"), task.NextRun.Local().Format(time.RFC3339))
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	for _, r := range results {
		status := st.Success.Render("ok    ")
		if !r.Success {
			status = st.Error.Render("failed")
		}
		fmt.Fprintf(out, "%s  %s  %6s  %d file(s)  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			r.EndedAt.Sub(r.StartedAt).Round(time.Millisecond),
			r.ItemsProcessed,
			st.Muted.Render(r.RunID))
		if r.Error != "" {
			first, _, _ := strings.Cut(r.Error, "\n")
			fmt.Fprintf(out, "    %s\n", first)
		}
	}
	return nil
}
