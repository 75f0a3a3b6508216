package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"smt_scheduler/internal/adapter/csvimport"
	"smt_scheduler/internal/usecase"

	"github.com/spf13/cobra"
)

// maxPrintedImportErrors caps the error list of the text summary.
const maxPrintedImportErrors = 10

func newImportCmd(open EnvFactory) *cobra.Command {
	var (
		path     string
		dryRun   bool
		skipRows int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import work orders from a CSV export of the planning spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			return withEnv(cmd, open, func(env *Env) error {
				rows, err := csvimport.Read(f, csvimport.Options{SkipRows: skipRows, Now: env.Clock.Now().In(env.Location)})
				if err != nil {
					return err
				}
				report, err := env.WorkOrderUseCase.Import(cmd.Context(), rows, dryRun)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(report)
				}
				printImportSummary(cmd, report)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "CSV file to import")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate every row without writing")
	cmd.Flags().IntVar(&skipRows, "skip-rows", 0, fmt.Sprintf("Rows above the header to discard (%d for the planning spreadsheet)", csvimport.SpreadsheetPreambleRows))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printImportSummary(cmd *cobra.Command, r usecase.ImportReport) {
	out := cmd.OutOrStdout()
	if r.DryRun {
		_, _ = fmt.Fprintln(out, "DRY RUN: nothing was written")
	}
	_, _ = fmt.Fprintln(out, "Import Summary:")
	_, _ = fmt.Fprintf(out, "Total rows processed: %d\n", r.TotalRows)
	_, _ = fmt.Fprintf(out, "Successful: %d (created %d, updated %d)\n", r.Successful(), r.Created, r.Updated)
	_, _ = fmt.Fprintf(out, "Failed: %d\n", r.Failed)
	if len(r.Errors) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out, "\nErrors:")
	for i, e := range r.Errors {
		if i == maxPrintedImportErrors {
			_, _ = fmt.Fprintf(out, "  ... and %d more errors\n", len(r.Errors)-maxPrintedImportErrors)
			break
		}
		_, _ = fmt.Fprintf(out, "  %s\n", e)
	}
}
