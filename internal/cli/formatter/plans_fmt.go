package formatter

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/i18n"
)

// FormatWorkoutPlans renders one card per workout day, titled "<Day> Workout".
func FormatWorkoutPlans(plans domain.Sections, tr *i18n.Translator) string {
	var b strings.Builder
	b.WriteString(Header(tr.T(i18n.KeyWorkoutPlans)))
	b.WriteString("\n")
	for _, sec := range plans {
		title := sec.Name + " " + tr.T(i18n.KeyWorkout)
		if d, ok := domain.ParseDay(sec.Name); ok {
			title = tr.Day(d) + " " + tr.T(i18n.KeyWorkout)
		}
		b.WriteString("\n")
		b.WriteString(RenderCard(title, sec.Items))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatStudyPlans renders one card per strategy category.
func FormatStudyPlans(plans domain.Sections, tr *i18n.Translator) string {
	var b strings.Builder
	b.WriteString(Header(tr.T(i18n.KeyStudyPlans)))
	b.WriteString("\n")
	for _, sec := range plans {
		b.WriteString("\n")
		b.WriteString(RenderCard(sec.Name, sec.Items))
		b.WriteString("\n")
	}
	return b.String()
}
