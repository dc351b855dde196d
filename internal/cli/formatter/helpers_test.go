package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-20 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "Feb 5, 2026 12:00"},
		{"future", now.Add(time.Hour), "Feb 7, 2026 13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 game", Pluralize(1, "game", "games"))
	assert.Equal(t, "0 games", Pluralize(0, "game", "games"))
	assert.Equal(t, "4 classes", Pluralize(4, "class", "classes"))
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "🎓", CategoryIcon(domain.FocusAcademic, true))
	assert.Equal(t, "🏆", CategoryIcon(domain.FocusAthletic, true))
	assert.Equal(t, "❤", CategoryIcon(domain.FocusRecovery, true))
	assert.Equal(t, "👥", CategoryIcon(domain.FocusSocial, true))
	assert.Equal(t, "💡", CategoryIcon("nutrition", true))
	assert.Equal(t, "🏋", CategoryIcon("", false))
}

func TestRenderBox(t *testing.T) {
	out := stripANSI(RenderBox("Profile", "hello"))
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	out := stripANSI(RenderBox("", "content here"))
	assert.Contains(t, out, "content here")
	assert.Contains(t, out, "╰")
}

func TestRenderCard(t *testing.T) {
	out := stripANSI(RenderCard("Monday Workout", []string{"10 min warm-up", "25 min cardio"}))
	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"Monday Workout", "  • 10 min warm-up", "  • 25 min cardio"}, lines)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"TIME", "TITLE"},
		[][]string{{"9:00 AM", "Math"}, {"10:30 AM", "Chem"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "TIME      TITLE", lines[0])
	assert.Equal(t, "9:00 AM   Math", lines[2])
	assert.Equal(t, "10:30 AM  Chem", lines[3])
}

func TestRenderTableIndent(t *testing.T) {
	out := stripANSI(RenderTableIndent(2, []string{"A"}, [][]string{{"x"}}))
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), line)
	}
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestSetDarkMode(t *testing.T) {
	defer SetDarkMode(true)

	SetDarkMode(false)
	assert.False(t, DarkMode())
	assert.Equal(t, LightPalette.Fg, ColorFg)

	SetDarkMode(true)
	assert.True(t, DarkMode())
	assert.Equal(t, DarkPalette.Fg, ColorFg)
}
