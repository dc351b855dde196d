package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/i18n"
)

// FormatSubmitResponse renders every section of a derived result followed
// by skipped-line warnings and a one-line summary.
func FormatSubmitResponse(resp *app.SubmitResponse, areaOf AreaLookup, tr *i18n.Translator) string {
	r := resp.Result
	sections := []string{
		FormatSchedule(r.Schedule, tr),
		FormatWorkoutPlans(r.Workouts, tr),
		FormatStudyPlans(r.Study, tr),
		FormatTips(r.Tips, areaOf, tr),
	}
	if d := FormatDropped(resp.Dropped, tr); d != "" {
		sections = append(sections, d)
	}
	sections = append(sections, FormatSummary(resp.Summary, resp.GeneratedAt))
	return strings.Join(sections, "\n")
}

// FormatSummary renders the item counts on one dim line.
func FormatSummary(s app.ResultSummary, at time.Time) string {
	parts := []string{
		Pluralize(s.Classes, "class", "classes"),
		Pluralize(s.Practices, "practice", "practices"),
		Pluralize(s.Games, "game", "games"),
		Pluralize(s.StudySessions, "study session", "study sessions"),
		Pluralize(s.Workouts, "workout", "workouts"),
	}
	line := strings.Join(parts, " · ")
	if !at.IsZero() {
		line += fmt.Sprintf(" · %s", HumanTimestamp(at))
	}
	return Dim(line) + "\n"
}
