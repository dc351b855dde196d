package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display preferences",
	}

	cmd.AddCommand(
		newDarkModeCmd(app),
		newLanguageCmd(app),
	)

	return cmd
}

func newDarkModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "dark-mode [on|off|toggle]",
		Short:     "Show or set dark mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var on bool
			var err error

			if len(args) == 0 {
				on, err = app.Prefs.DarkMode(ctx)
			} else {
				switch strings.ToLower(args[0]) {
				case "on":
					on, err = true, app.Prefs.SetDarkMode(ctx, true)
				case "off":
					on, err = false, app.Prefs.SetDarkMode(ctx, false)
				case "toggle":
					on, err = app.Prefs.ToggleDarkMode(ctx)
				default:
					return fmt.Errorf("invalid value %q: use on, off or toggle", args[0])
				}
			}
			if err != nil {
				return err
			}

			formatter.SetDarkMode(on)
			state := "off"
			if on {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dark mode: %s\n", formatter.Bold(state))
			return nil
		},
	}
}

func newLanguageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "language [CODE]",
		Short: "Show or set the display language",
		Long:  "Show or set the display language. Supported: " + strings.Join(i18n.Languages(), ", ") + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				code, err := app.Prefs.SetLanguage(ctx, args[0])
				if err != nil {
					return fmt.Errorf("%w (supported: %s)", err, strings.Join(i18n.Languages(), ", "))
				}
				fmt.Fprintf(out, "Language: %s\n", formatter.Bold(code))
				return nil
			}

			saved, err := app.Prefs.Language(ctx)
			if err != nil {
				return err
			}
			effective := app.translator(ctx).Lang()
			if saved == "" {
				fmt.Fprintf(out, "Language: %s %s\n", formatter.Bold(effective), formatter.Dim("(not saved)"))
				return nil
			}
			fmt.Fprintf(out, "Language: %s\n", formatter.Bold(effective))
			return nil
		},
	}
}
