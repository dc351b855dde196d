package cli

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/spf13/pflag"
)

// profileFlags holds the per-field flags of the plan command. Each flag maps
// onto one intake form field.
type profileFlags struct {
	name          string
	sport         string
	classes       []string
	practices     []string
	games         []string
	studyHours    string
	academicLevel string
	trainingLevel string
	goals         string
	wake          string
	sleep         string
	focus         []string
}

// flagFields pairs flag names with the form fields they fill.
var flagFields = map[string]string{
	"name":           intake.FieldName,
	"sport":          intake.FieldSport,
	"class":          intake.FieldClasses,
	"practice":       intake.FieldPractices,
	"game":           intake.FieldGames,
	"study-hours":    intake.FieldStudyHours,
	"academic-level": intake.FieldAcademicLevel,
	"training-level": intake.FieldTrainingLevel,
	"goals":          intake.FieldGoals,
	"wake":           intake.FieldWakeTime,
	"sleep":          intake.FieldSleepTime,
	"focus":          intake.FieldFocusAreas,
}

func (f *profileFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Athlete name")
	fs.StringVar(&f.sport, "sport", "", "Sport (e.g. basketball, soccer)")
	fs.StringArrayVar(&f.classes, "class", nil, `Class line, repeatable ("Algebra - Mon 9:00 AM")`)
	fs.StringArrayVar(&f.practices, "practice", nil, `Practice line, repeatable ("Practice Tuesday 3:30 PM")`)
	fs.StringArrayVar(&f.games, "game", nil, `Game line, repeatable ("Saturday 1:00 PM vs Eagles")`)
	fs.StringVar(&f.studyHours, "study-hours", "", "Study hours per week")
	fs.StringVar(&f.academicLevel, "academic-level", "", "highschool or undergraduate")
	fs.StringVar(&f.trainingLevel, "training-level", "", "recreational or competitive")
	fs.StringVar(&f.goals, "goals", "", "Goals, free text")
	fs.StringVar(&f.wake, "wake", "", "Wake time")
	fs.StringVar(&f.sleep, "sleep", "", "Sleep time")
	fs.StringSliceVar(&f.focus, "focus", nil, "Focus areas: academic,athletic,recovery,social")
}

// changed reports whether any profile flag was given.
func (f *profileFlags) changed(fs *pflag.FlagSet) bool {
	for name := range flagFields {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// form builds intake form values from the flags. Repeated line flags are
// joined with newlines so they go through the same line splitting as the
// text areas.
func (f *profileFlags) form() intake.Form {
	form := intake.Form{}
	setText := func(field, v string) {
		if v != "" {
			form.Set(field, v)
		}
	}
	setText(intake.FieldName, f.name)
	setText(intake.FieldSport, f.sport)
	setText(intake.FieldClasses, strings.Join(f.classes, "\n"))
	setText(intake.FieldPractices, strings.Join(f.practices, "\n"))
	setText(intake.FieldGames, strings.Join(f.games, "\n"))
	setText(intake.FieldStudyHours, f.studyHours)
	setText(intake.FieldAcademicLevel, f.academicLevel)
	setText(intake.FieldTrainingLevel, f.trainingLevel)
	setText(intake.FieldGoals, f.goals)
	setText(intake.FieldWakeTime, f.wake)
	setText(intake.FieldSleepTime, f.sleep)
	for _, area := range f.focus {
		if a := strings.TrimSpace(area); a != "" {
			form.Add(intake.FieldFocusAreas, a)
		}
	}
	return form
}

// overlay replaces fields of base with the flags that were explicitly set.
func (f *profileFlags) overlay(fs *pflag.FlagSet, base intake.Form) intake.Form {
	given := f.form()
	for flag, field := range flagFields {
		if !fs.Changed(flag) {
			continue
		}
		if v, ok := given[field]; ok {
			base[field] = v
		} else {
			delete(base, field)
		}
	}
	return base
}
