package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the wizard needs an interactive terminal; use generate --subject or --file instead")

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Enter subjects interactively, then open the tabbed viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			resp, err := runWizardAndGenerate(cmd.Context(), app)
			if err != nil || resp == nil {
				return err
			}
			return app.runProgram(newViewerModel(resp))
		},
	}
}
