package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/i18n"
)

// FormatProfile renders the saved profile as a boxed label/value list.
func FormatProfile(p *domain.UserProfile, tr *i18n.Translator) string {
	hours := "--"
	if p.StudyHours != nil {
		hours = strconv.Itoa(*p.StudyHours)
	}
	focus := make([]string, len(p.FocusAreas))
	for i, a := range p.FocusAreas {
		focus[i] = string(a)
	}

	rows := [][2]string{
		{"Name", p.Name},
		{"Sport", p.Sport},
		{"Academic level", string(p.AcademicLevel)},
		{"Training level", string(p.TrainingLevel)},
		{"Study hours/week", hours},
		{"Wake / sleep", p.WakeTime + " / " + p.SleepTime},
		{"Focus areas", strings.Join(focus, ", ")},
		{"Goals", p.Goals},
	}

	var b strings.Builder
	for _, r := range rows {
		value := r[1]
		if strings.TrimSpace(value) == "" || value == " / " {
			value = Dim("--")
		}
		b.WriteString(Dim(padLabel(r[0])) + value + "\n")
	}
	writeLines(&b, "Classes", p.Classes)
	writeLines(&b, "Practices", p.Practices)
	writeLines(&b, "Games", p.Games)

	return RenderBox(tr.T(i18n.KeyProfile), strings.TrimRight(b.String(), "\n"))
}

func padLabel(s string) string {
	const width = 18
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func writeLines(b *strings.Builder, label string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString("\n" + Bold(label) + "\n")
	for _, l := range lines {
		b.WriteString("  " + l + "\n")
	}
}
