package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLinesCmd(open EnvFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List production lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, open, func(env *Env) error {
				lines, err := env.Lines.ListLines(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tHOURS/DAY\tDAYS/WEEK\tSHIFT\tMULTIPLIER\tAUTO")
				for _, l := range lines {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%d\t%s-%s\t%g\t%t\n",
						l.ID, l.Name, l.Status, l.DailyCapacity(), l.DaysPerWeek,
						l.ShiftStart, l.ShiftEnd, l.TimeMultiplier, l.AutoScheduleEnabled)
				}
				return tw.Flush()
			})
		},
	}
}
