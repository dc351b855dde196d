package app

import "github.com/alexanderramin/stuath/internal/domain"

// ResultSummary counts what a derivation produced, for logs and the CLI footer.
type ResultSummary struct {
	Classes       int
	Practices     int
	Games         int
	StudySessions int
	Workouts      int
	RestBlocks    int
	WorkoutDays   int
	StudyGroups   int
	TipGroups     int
	Dropped       int
}

// Summarize counts the items of r. dropped is the number of skipped input lines.
func Summarize(r *domain.DerivedResult, dropped int) ResultSummary {
	return ResultSummary{
		Classes:       r.Schedule.Count(domain.ItemClass),
		Practices:     r.Schedule.Count(domain.ItemPractice),
		Games:         r.Schedule.Count(domain.ItemGame),
		StudySessions: r.Schedule.Count(domain.ItemStudy),
		Workouts:      r.Schedule.Count(domain.ItemWorkout),
		RestBlocks:    r.Schedule.Count(domain.ItemRest),
		WorkoutDays:   len(r.Workouts),
		StudyGroups:   len(r.Study),
		TipGroups:     len(r.Tips),
		Dropped:       dropped,
	}
}

// Fields flattens the summary for structured logging.
func (s ResultSummary) Fields() map[string]any {
	return map[string]any{
		"classes":        s.Classes,
		"practices":      s.Practices,
		"games":          s.Games,
		"study_sessions": s.StudySessions,
		"workouts":       s.Workouts,
		"tip_groups":     s.TipGroups,
		"dropped_lines":  s.Dropped,
	}
}
