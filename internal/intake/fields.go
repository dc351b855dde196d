// Package intake turns raw form values into a normalized UserProfile.
//
// Every profile field is listed once in Fields, pairing the form field name
// with its widget role and the assignment into the profile. The normalizer,
// the interactive form and the profile-file loader all walk this table.
package intake

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

// Widget is the input control used to collect a field.
type Widget string

const (
	WidgetInput       Widget = "input"
	WidgetNumber      Widget = "number"
	WidgetTextArea    Widget = "textarea"
	WidgetSelect      Widget = "select"
	WidgetMultiSelect Widget = "multiselect"
)

// Option is one choice of a select or multi-select field.
type Option struct {
	Label string
	Value string
}

// Field binds a form field name to its widget and profile slot.
type Field struct {
	Name    string
	Label   string
	Widget  Widget
	Options []Option

	assign func(p *domain.UserProfile, values []string)
	read   func(p *domain.UserProfile) []string
}

// Field names as submitted by the form.
const (
	FieldName          = "name"
	FieldSport         = "sport"
	FieldClasses       = "classes"
	FieldStudyHours    = "studyHours"
	FieldAcademicLevel = "academicLevel"
	FieldPractices     = "practices"
	FieldGames         = "games"
	FieldTrainingLevel = "trainingLevel"
	FieldGoals         = "goals"
	FieldWakeTime      = "wakeTime"
	FieldSleepTime     = "sleepTime"
	FieldFocusAreas    = "focusAreas"
)

// Fields is the complete form, in display order.
var Fields = []Field{
	{
		Name: FieldName, Label: "Name", Widget: WidgetInput,
		assign: func(p *domain.UserProfile, v []string) { p.Name = first(v) },
		read:   func(p *domain.UserProfile) []string { return single(p.Name) },
	},
	{
		Name: FieldSport, Label: "Sport", Widget: WidgetInput,
		assign: func(p *domain.UserProfile, v []string) { p.Sport = first(v) },
		read:   func(p *domain.UserProfile) []string { return single(p.Sport) },
	},
	{
		Name: FieldClasses, Label: "Classes (one per line, e.g. Algebra - Mon 9:00 AM)", Widget: WidgetTextArea,
		assign: func(p *domain.UserProfile, v []string) { p.Classes = ParseLines(first(v)) },
		read:   func(p *domain.UserProfile) []string { return single(strings.Join(p.Classes, "\n")) },
	},
	{
		Name: FieldStudyHours, Label: "Study hours per week", Widget: WidgetNumber,
		assign: func(p *domain.UserProfile, v []string) { p.StudyHours = ParseLeadingInt(first(v)) },
		read: func(p *domain.UserProfile) []string {
			if p.StudyHours == nil {
				return nil
			}
			return single(itoa(*p.StudyHours))
		},
	},
	{
		Name: FieldAcademicLevel, Label: "Academic level", Widget: WidgetSelect,
		Options: []Option{
			{Label: "High school", Value: string(domain.LevelHighSchool)},
			{Label: "Undergraduate", Value: string(domain.LevelUndergraduate)},
		},
		assign: func(p *domain.UserProfile, v []string) {
			p.AcademicLevel = domain.AcademicLevel(first(v))
			if p.AcademicLevel == "" {
				p.AcademicLevel = domain.LevelHighSchool
			}
		},
		read: func(p *domain.UserProfile) []string { return single(string(p.AcademicLevel)) },
	},
	{
		Name: FieldPractices, Label: "Practices (one per line, e.g. Practice at 4:00 PM on Wednesday)", Widget: WidgetTextArea,
		assign: func(p *domain.UserProfile, v []string) { p.Practices = ParseLines(first(v)) },
		read:   func(p *domain.UserProfile) []string { return single(strings.Join(p.Practices, "\n")) },
	},
	{
		Name: FieldGames, Label: "Games (one per line, e.g. Home vs Eagles Saturday 1:00 PM)", Widget: WidgetTextArea,
		assign: func(p *domain.UserProfile, v []string) { p.Games = ParseLines(first(v)) },
		read:   func(p *domain.UserProfile) []string { return single(strings.Join(p.Games, "\n")) },
	},
	{
		Name: FieldTrainingLevel, Label: "Training level", Widget: WidgetSelect,
		Options: []Option{
			{Label: "Recreational", Value: string(domain.TrainingRecreational)},
			{Label: "Competitive", Value: string(domain.TrainingCompetitive)},
		},
		assign: func(p *domain.UserProfile, v []string) { p.TrainingLevel = domain.TrainingLevel(first(v)) },
		read:   func(p *domain.UserProfile) []string { return single(string(p.TrainingLevel)) },
	},
	{
		Name: FieldGoals, Label: "Goals", Widget: WidgetTextArea,
		assign: func(p *domain.UserProfile, v []string) { p.Goals = first(v) },
		read:   func(p *domain.UserProfile) []string { return single(p.Goals) },
	},
	{
		Name: FieldWakeTime, Label: "Wake time", Widget: WidgetInput,
		assign: func(p *domain.UserProfile, v []string) { p.WakeTime = first(v) },
		read:   func(p *domain.UserProfile) []string { return single(p.WakeTime) },
	},
	{
		Name: FieldSleepTime, Label: "Sleep time", Widget: WidgetInput,
		assign: func(p *domain.UserProfile, v []string) { p.SleepTime = first(v) },
		read:   func(p *domain.UserProfile) []string { return single(p.SleepTime) },
	},
	{
		Name: FieldFocusAreas, Label: "Focus areas", Widget: WidgetMultiSelect,
		Options: []Option{
			{Label: "Academic", Value: string(domain.FocusAcademic)},
			{Label: "Athletic", Value: string(domain.FocusAthletic)},
			{Label: "Recovery", Value: string(domain.FocusRecovery)},
			{Label: "Social", Value: string(domain.FocusSocial)},
		},
		assign: func(p *domain.UserProfile, v []string) { p.FocusAreas = collectFocusAreas(v) },
		read: func(p *domain.UserProfile) []string {
			out := make([]string, len(p.FocusAreas))
			for i, a := range p.FocusAreas {
				out[i] = string(a)
			}
			return out
		},
	},
}

// Lookup returns the field with the given form name.
func Lookup(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func single(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
