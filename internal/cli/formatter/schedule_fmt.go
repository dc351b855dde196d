package formatter

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/i18n"
)

// FormatSchedule renders all seven days in week order, one table per day.
func FormatSchedule(s domain.WeeklySchedule, tr *i18n.Translator) string {
	var b strings.Builder
	b.WriteString(Header(tr.T(i18n.KeyWeekly)))
	b.WriteString("\n")

	for _, d := range domain.Days {
		b.WriteString("\n")
		b.WriteString(Bold(tr.Day(d)))
		b.WriteString("\n")

		items := s[d]
		if len(items) == 0 {
			b.WriteString("  " + Dim(tr.T(i18n.KeyNoItems)) + "\n")
			continue
		}
		b.WriteString(FormatDay(items, tr))
	}
	return b.String()
}

// FormatDay renders one day's items as an indented table.
func FormatDay(items []domain.ScheduleItem, tr *i18n.Translator) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			StyleFg.Render(it.Time),
			ItemBadge(it.Type, tr.ItemType(it.Type)),
			Bold(it.Title),
			Dim(it.Description),
		})
	}
	return RenderTableIndent(2, []string{"TIME", "TYPE", "TITLE", "DETAILS"}, rows)
}
