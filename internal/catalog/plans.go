package catalog

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

// WorkoutTemplateFor returns the template for (sport, level), or the default
// template when either is unknown.
func (c *Catalog) WorkoutTemplateFor(sport string, level domain.TrainingLevel) WorkoutTemplate {
	key := strings.ToLower(strings.TrimSpace(sport))
	for _, w := range c.Workouts {
		if strings.ToLower(w.Sport) == key && w.Level == string(level) {
			return w
		}
	}
	return c.DefaultWorkout
}

// SelectWorkoutPlan assigns the template's blocks to Monday, Wednesday and
// Friday in declared order.
func (c *Catalog) SelectWorkoutPlan(p *domain.UserProfile) domain.Sections {
	tmpl := c.WorkoutTemplateFor(p.Sport, p.TrainingLevel)
	plan := domain.Sections{}
	for i, day := range domain.WorkoutDays {
		if i >= len(tmpl.Blocks) {
			break
		}
		plan = append(plan, domain.Section{
			Name:  string(day),
			Items: copyStrings(tmpl.Blocks[i].Exercises),
		})
	}
	return plan
}

// StudyTemplateFor returns the template for an academic level, falling back
// to high school.
func (c *Catalog) StudyTemplateFor(level domain.AcademicLevel) StudyTemplate {
	var fallback StudyTemplate
	for _, s := range c.Study {
		if s.Level == string(level) {
			return s
		}
		if s.Level == string(domain.LevelHighSchool) {
			fallback = s
		}
	}
	return fallback
}

// SelectStudyPlan returns the strategy categories for the profile's academic level.
func (c *Catalog) SelectStudyPlan(p *domain.UserProfile) domain.Sections {
	tmpl := c.StudyTemplateFor(p.AcademicLevel)
	plan := domain.Sections{}
	for _, cat := range tmpl.Categories {
		plan = append(plan, domain.Section{Name: cat.Name, Items: copyStrings(cat.Tips)})
	}
	return plan
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
