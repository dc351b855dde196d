package cli

import (
	"fmt"

	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved profile and all preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive && !yes {
				confirmed := false
				form := wizardConfirm("Delete all stored data?", &confirmed).WithOutput(cmd.ErrOrStderr())
				if app.Stdin != nil {
					form = form.WithInput(app.Stdin)
				}
				if err := form.RunWithContext(cmd.Context()); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing removed."))
					return nil
				}
			}

			removed, err := app.Reset.Reset(cmd.Context())
			if err != nil {
				return err
			}
			formatter.SetDarkMode(true)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", formatter.Pluralize(removed, "stored key", "stored keys"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
