package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// stuathHuhTheme returns a huh theme built from the active formatter palette.
func stuathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[•] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardGroups lays the profile fields out over the form's pages.
var wizardGroups = []struct {
	title  string
	fields []string
}{
	{"About you", []string{intake.FieldName, intake.FieldSport, intake.FieldGoals}},
	{"Academics", []string{intake.FieldClasses, intake.FieldStudyHours, intake.FieldAcademicLevel}},
	{"Athletics", []string{intake.FieldPractices, intake.FieldGames, intake.FieldTrainingLevel}},
	{"Daily rhythm", []string{intake.FieldWakeTime, intake.FieldSleepTime, intake.FieldFocusAreas}},
}

var fieldPlaceholders = map[string]string{
	intake.FieldName:      "Alex",
	intake.FieldSport:     "basketball",
	intake.FieldClasses:   "Algebra - Mon 9:00 AM",
	intake.FieldPractices: "Practice Tuesday 3:30 PM",
	intake.FieldGames:     "Saturday 1:00 PM vs Eagles",
	intake.FieldWakeTime:  "6:30",
	intake.FieldSleepTime: "22:30",
}

// wizardValues is the storage huh writes into while the form runs.
type wizardValues struct {
	text  map[string]*string
	multi map[string]*[]string
}

func newWizardValues(initial intake.Form) *wizardValues {
	v := &wizardValues{
		text:  make(map[string]*string),
		multi: make(map[string]*[]string),
	}
	for _, f := range intake.Fields {
		if f.Widget == intake.WidgetMultiSelect {
			vals := append([]string{}, initial[f.Name]...)
			v.multi[f.Name] = &vals
			continue
		}
		s := initial.Get(f.Name)
		if s == "" && f.Widget == intake.WidgetSelect && len(f.Options) > 0 {
			s = f.Options[0].Value
		}
		v.text[f.Name] = &s
	}
	return v
}

// form returns the values as submitted form data.
func (v *wizardValues) form() intake.Form {
	form := intake.Form{}
	for name, s := range v.text {
		if *s != "" {
			form.Set(name, *s)
		}
	}
	for name, vals := range v.multi {
		if len(*vals) > 0 {
			form.Set(name, (*vals)...)
		}
	}
	return form
}

// wizardProfile creates the huh form that collects a whole profile. Values
// are written into v; initial values come from v as well.
func wizardProfile(v *wizardValues) *huh.Form {
	groups := make([]*huh.Group, 0, len(wizardGroups))
	for _, g := range wizardGroups {
		fields := make([]huh.Field, 0, len(g.fields))
		for _, name := range g.fields {
			f, ok := intake.Lookup(name)
			if !ok {
				continue
			}
			fields = append(fields, wizardField(f, v))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(g.title))
	}
	return huh.NewForm(groups...).WithTheme(stuathHuhTheme()).WithShowHelp(true)
}

func wizardField(f intake.Field, v *wizardValues) huh.Field {
	switch f.Widget {
	case intake.WidgetTextArea:
		return huh.NewText().
			Title(f.Label).
			Placeholder(fieldPlaceholders[f.Name]).
			Lines(4).
			Value(v.text[f.Name])
	case intake.WidgetNumber:
		return huh.NewInput().
			Title(f.Label).
			Placeholder("7").
			Validate(validateWeeklyHours).
			Value(v.text[f.Name])
	case intake.WidgetSelect:
		return huh.NewSelect[string]().
			Title(f.Label).
			Options(huhOptions(f.Options)...).
			Value(v.text[f.Name])
	case intake.WidgetMultiSelect:
		return huh.NewMultiSelect[string]().
			Title(f.Label).
			Options(huhOptions(f.Options)...).
			Value(v.multi[f.Name])
	default:
		return huh.NewInput().
			Title(f.Label).
			Placeholder(fieldPlaceholders[f.Name]).
			Value(v.text[f.Name])
	}
}

func huhOptions(opts []intake.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(o.Label, o.Value)
	}
	return out
}

// validateWeeklyHours accepts empty or a whole number of hours within a week.
func validateWeeklyHours(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	if v > domain.MaxWeeklyStudyHours {
		return fmt.Errorf("a week has only %d hours", domain.MaxWeeklyStudyHours)
	}
	return nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(stuathHuhTheme()).WithShowHelp(false)
}
