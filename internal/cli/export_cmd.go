package cli

import (
	"fmt"
	"io"
	"os"

	"smt_scheduler/internal/adapter/export"

	"github.com/spf13/cobra"
)

func newExportCmd(open EnvFactory) *cobra.Command {
	var (
		outPath string
		filter  export.Filter
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export line schedules as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, open, func(env *Env) error {
				lines, err := env.Lines.ListLines(cmd.Context())
				if err != nil {
					return err
				}
				orders, err := env.WorkOrders.ListActive(cmd.Context())
				if err != nil {
					return err
				}

				var w io.Writer = cmd.OutOrStdout()
				if outPath != "" && outPath != "-" {
					f, err := os.Create(outPath)
					if err != nil {
						return fmt.Errorf("failed to create %s: %w", outPath, err)
					}
					defer f.Close()
					w = f
				}

				n, err := export.WriteLineSchedules(w, lines, orders, filter, env.Location)
				if err != nil {
					return err
				}
				if outPath != "" && outPath != "-" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "exported %d scheduled work orders to %s\n", n, outPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&filter.LineName, "line", "", "Only this line (by name)")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Only work orders with this status")
	return cmd
}
