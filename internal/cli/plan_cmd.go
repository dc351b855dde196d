package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/alexanderramin/stuath/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runResultsViewer runs the results viewer full screen. Tests replace it.
var runResultsViewer = func(m tea.Model, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(out)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

type planOptions struct {
	profile     profileFlags
	from        string
	last        bool
	interactive bool
	jsonOut     bool
	exportPath  string
	view        bool
	noDelay     bool
}

func newPlanCmd(app *App) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a weekly schedule from your profile",
		Long: `Build a weekly schedule, workout plans, study plans and tips.

The profile comes from flags, a YAML/JSON file (--from), the last saved
profile (--last) or the interactive form (-i). Flags given together with
--from or --last override the fields they name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, app, opts)
		},
	}

	fs := cmd.Flags()
	opts.profile.register(fs)
	fs.StringVar(&opts.from, "from", "", "Read the profile from a YAML or JSON file")
	fs.BoolVar(&opts.last, "last", false, "Use the last saved profile")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "Fill in the profile with an interactive form")
	fs.BoolVar(&opts.jsonOut, "json", false, "Print the export document as JSON")
	fs.StringVar(&opts.exportPath, "export", "", "Also write the export document to this file")
	fs.BoolVar(&opts.view, "view", false, "Browse the results in a tabbed viewer")
	fs.BoolVar(&opts.noDelay, "no-delay", false, "Skip the loading delay")
	cmd.MarkFlagsMutuallyExclusive("from", "last", "interactive")
	cmd.MarkFlagsMutuallyExclusive("json", "view")

	return cmd
}

func runPlan(cmd *cobra.Command, a *App, opts *planOptions) error {
	ctx := cmd.Context()
	tr := a.translator(ctx)

	form, err := collectForm(cmd, a, opts)
	if err != nil {
		return err
	}

	req := a.submitRequest(form, opts)
	var stopSpinner func()
	if a.IsInteractive && !req.SkipDelay {
		req.OnPending = func(app.Ticket) {
			stopSpinner = formatter.StartSpinner(cmd.ErrOrStderr(), tr.T(i18n.KeyGenerating))
		}
	}

	resp, err := a.Derivation.Submit(ctx, req)
	if stopSpinner != nil {
		stopSpinner()
	}
	if err != nil {
		return err
	}

	return renderPlan(cmd, a, opts, resp, tr)
}

func (a *App) submitRequest(form intake.Form, opts *planOptions) app.SubmitRequest {
	req := app.NewSubmitRequest(form)
	req.SkipDelay = opts.noDelay || opts.jsonOut
	return req
}

// collectForm picks the profile source: file, saved profile, interactive
// form or flags.
func collectForm(cmd *cobra.Command, a *App, opts *planOptions) (intake.Form, error) {
	ctx := cmd.Context()
	fs := cmd.Flags()

	switch {
	case opts.from != "":
		form, err := intake.LoadFormFile(opts.from)
		if err != nil {
			return nil, err
		}
		return opts.profile.overlay(fs, form), nil

	case opts.last:
		p, err := a.Profiles.Saved(ctx)
		if err != nil {
			return nil, savedProfileErr(err)
		}
		return opts.profile.overlay(fs, intake.FormFromProfile(p)), nil

	case opts.interactive || (a.IsInteractive && !opts.profile.changed(fs)):
		return runProfileWizard(ctx, cmd, a, opts)

	default:
		return opts.profile.form(), nil
	}
}

// runProfileWizard shows the huh form, pre-filled from the flags or, when no
// flags were given, from the saved profile.
func runProfileWizard(ctx context.Context, cmd *cobra.Command, a *App, opts *planOptions) (intake.Form, error) {
	initial := opts.profile.form()
	if !opts.profile.changed(cmd.Flags()) {
		if p, err := a.Profiles.Saved(ctx); err == nil {
			initial = intake.FormFromProfile(p)
		}
	}

	values := newWizardValues(initial)
	form := wizardProfile(values).WithOutput(cmd.ErrOrStderr())
	if a.Stdin != nil {
		form = form.WithInput(a.Stdin)
	}
	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("profile form: %w", err)
	}
	return values.form(), nil
}

func renderPlan(cmd *cobra.Command, a *App, opts *planOptions, resp *app.SubmitResponse, tr *i18n.Translator) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.exportPath != "" {
		path, err := a.Export.WriteFile(ctx, opts.exportPath, resp.Result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", tr.T(i18n.KeyExported), path)
	}

	if opts.jsonOut {
		return a.Export.Write(ctx, out, resp.Result)
	}

	areaOf := a.catalog().CategoryArea
	if opts.view && a.IsInteractive {
		return runResultsViewer(newResultsModel(resp, areaOf, tr), a.Stdin, out)
	}

	fmt.Fprint(out, formatter.FormatSubmitResponse(resp, areaOf, tr))
	return nil
}

func savedProfileErr(err error) error {
	if errors.Is(err, service.ErrNoSavedProfile) {
		return fmt.Errorf("%w: run 'stuath plan' first", err)
	}
	return err
}
