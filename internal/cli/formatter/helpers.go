package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard renders a titled list, one bullet per entry.
func RenderCard(title string, items []string) string {
	var b strings.Builder
	b.WriteString(Bold(title))
	for _, it := range items {
		b.WriteString("\n  ")
		b.WriteString(StyleDim.Render("•"))
		b.WriteString(" ")
		b.WriteString(StyleFg.Render(it))
	}
	return b.String()
}

// CategoryIcon returns the glyph shown next to a tip category. Categories
// with no focus area (the sport-specific one) get the dumbbell.
func CategoryIcon(area domain.FocusArea, known bool) string {
	if !known {
		return "🏋"
	}
	switch area {
	case domain.FocusAcademic:
		return "🎓"
	case domain.FocusAthletic:
		return "🏆"
	case domain.FocusRecovery:
		return "❤"
	case domain.FocusSocial:
		return "👥"
	default:
		return "💡"
	}
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom is HumanTimestamp against a fixed reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}

// Pluralize returns "1 line" / "3 lines".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
