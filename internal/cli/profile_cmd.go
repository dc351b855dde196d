package cli

import (
	"fmt"

	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or forget the saved profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileForgetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Saved(ctx)
			if err != nil {
				return savedProfileErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p, app.translator(ctx)))
			return nil
		},
	}
}

func newProfileForgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Delete the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Forget(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved profile removed.")
			return nil
		},
	}
}
