package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studyplan/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var in planInputs
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan's calendar as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := in.generate(cmd.Context(), app)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return export.WriteICS(cmd.OutOrStdout(), resp)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := export.WriteICS(f, resp); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d days)\n", out, resp.TotalDays)
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default stdout)")

	return cmd
}
