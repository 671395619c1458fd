package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var in planInputs
	var view string
	var tui, asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the timetable, progress list and calendar for a plan",
		Example: `  studyplan generate --subject Math:12 --subject English:20:4-1 --start 2025-03-02 --end 2025-03-31
  studyplan generate --file plan.yaml --view all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if view == "" {
				view = app.Config.DefaultView
			}
			if !config.ValidView(view) {
				return fmt.Errorf("unknown view %q (choose from %s)", view, strings.Join(viewNames, ", "))
			}

			var resp *contract.GenerateResponse
			var err error
			if in.empty() && app.interactive() {
				resp, err = runWizardAndGenerate(cmd.Context(), app)
			} else {
				resp, err = in.generate(cmd.Context(), app)
			}
			if err != nil {
				return err
			}
			if resp == nil {
				return nil
			}

			switch {
			case asJSON:
				return writeJSON(cmd.OutOrStdout(), resp)
			case tui:
				return app.runProgram(newViewerModel(resp))
			default:
				fmt.Fprint(cmd.OutOrStdout(), renderPlan(resp, view))
				return nil
			}
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&view, "view", "", "View to print: timetable, progress, calendar or all (default from config)")
	cmd.Flags().BoolVar(&tui, "tui", false, "Open the tabbed viewer")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.MarkFlagsMutuallyExclusive("tui", "json")

	return cmd
}

var viewNames = []string{config.ViewTimetable, config.ViewProgress, config.ViewCalendar, config.ViewAll}

// renderPlan prints the summary box followed by the chosen view.
func renderPlan(resp *contract.GenerateResponse, view string) string {
	sections := []string{formatter.FormatPlanSummary(resp)}
	if view == config.ViewTimetable || view == config.ViewAll {
		sections = append(sections, formatter.FormatTimetable(resp.Timetable))
	}
	if view == config.ViewProgress || view == config.ViewAll {
		sections = append(sections, formatter.FormatProgress(resp.Progress, formatter.ChecklistState{}))
	}
	if view == config.ViewCalendar || view == config.ViewAll {
		sections = append(sections, formatter.FormatCalendar(resp.Calendar))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func writeJSON(w io.Writer, resp *contract.GenerateResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
