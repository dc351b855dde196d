package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/export"
	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the schedule for the saved profile to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := a.Derivation.Regenerate(ctx); err != nil {
				var serr *app.SubmitError
				if errors.As(err, &serr) && serr.Code == app.SubmitErrNoProfile {
					return savedProfileErr(serr.Err)
				}
				return err
			}

			path, err := a.Export.WriteCurrent(ctx, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.translator(ctx).T(i18n.KeyExported), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultFileName, "Output file")

	return cmd
}
