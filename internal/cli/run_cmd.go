package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	response "smt_scheduler/internal/adapter/http/dto/response"
	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase"

	"github.com/spf13/cobra"
)

func newRunCmd(open EnvFactory) *cobra.Command {
	var (
		asOf    string
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the auto-scheduler once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, open, func(env *Env) error {
				at, err := usecase.ParseAsOf(asOf, env.Clock.Now(), env.Location)
				if err != nil {
					return err
				}
				res, err := env.AutoSchedule.RunAutoSchedule(cmd.Context(), at)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(response.FromRunResult(res))
				}
				return printRunSummary(cmd, res, env.Location, verbose)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Plan as of this date (YYYY-MM-DD, MM/DD/YYYY, MM/DD/YY, MM/DD); default now")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full run result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every job outcome")
	return cmd
}

func printRunSummary(cmd *cobra.Command, res entities.RunResult, loc *time.Location, verbose bool) error {
	out := cmd.OutOrStdout()
	status := "complete"
	if res.Partial {
		status = "partial"
	}
	_, _ = fmt.Fprintf(out, "run %s (%s) as of %s\n", res.RunID, status, res.AsOf.In(loc).Format("2006-01-02 15:04"))
	_, _ = fmt.Fprintf(out, "scheduled %d, failed %d, unprocessed %d, locked %d, cleared %d\n",
		res.ScheduledCount, res.FailedCount, res.UnprocessedCount, res.LockedCount, res.ClearedCount)
	for _, le := range res.LaneErrors {
		_, _ = fmt.Fprintf(out, "line %s excluded: %s\n", le.Name, le.Message)
	}
	if !verbose {
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "WO\tOUTCOME\tLINE\tSTART\tEND\tREASON")
	for _, o := range res.Outcomes {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.Number, o.Outcome, o.LineID, formatClock(o.Start, loc), formatClock(o.End, loc), o.Reason)
	}
	return tw.Flush()
}

func formatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format("2006-01-02 15:04")
}
