package cli

import (
	"context"
	"io"

	"github.com/alexanderramin/stuath/internal/catalog"
	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/alexanderramin/stuath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Derivation service.DerivationService
	Profiles   service.ProfileService
	Prefs      service.PreferenceService
	Export     service.ExportService
	Reset      service.ResetService
	Catalog    *catalog.Catalog

	// Lang overrides the saved language preference when non-empty.
	Lang string
	// SystemLang is the language derived from the process locale.
	SystemLang string

	// IsInteractive is true when stdin and stdout are terminals. It enables
	// the huh form, the spinner and the results viewer.
	IsInteractive bool
	Stdin         io.Reader
}

// NewRootCmd creates the top-level "stuath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stuath",
		Short:         "Weekly schedule generator for student-athletes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Prefs == nil {
				return nil
			}
			dark, err := app.Prefs.DarkMode(cmd.Context())
			if err != nil {
				return err
			}
			formatter.SetDarkMode(dark)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Lang, "lang", app.Lang, "Display language (en, fr, zh)")

	root.AddCommand(
		newPlanCmd(app),
		newExportCmd(app),
		newProfileCmd(app),
		newPrefsCmd(app),
		newResetCmd(app),
	)

	return root
}

// translator resolves the display language for this run.
func (a *App) translator(ctx context.Context) *i18n.Translator {
	code := i18n.Default
	if a.Prefs != nil {
		code = a.Prefs.ResolveLanguage(ctx, a.Lang, a.SystemLang)
	} else if a.Lang != "" {
		code = a.Lang
	}
	tr, err := i18n.New(code)
	if err != nil {
		return i18n.MustNew(i18n.Default)
	}
	return tr
}

func (a *App) catalog() *catalog.Catalog {
	if a.Catalog == nil {
		return catalog.Default()
	}
	return a.Catalog
}
