package catalog

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

// ValidationError collects every problem found in a catalog.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid catalog (%d problems): %s", len(e.Errs), strings.Join(msgs, "; "))
}

// Validate checks the structural rules the selectors rely on and returns all
// violations found.
func Validate(c *Catalog) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, w := range c.Workouts {
		path := fmt.Sprintf("workouts[%d]", i)
		if w.Sport == "" {
			errs = append(errs, fmt.Errorf("%s.sport is required", path))
		}
		if !domain.ValidTrainingLevels[w.Level] {
			errs = append(errs, fmt.Errorf("%s.level: invalid value %q", path, w.Level))
		}
		key := strings.ToLower(w.Sport) + "/" + w.Level
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate template for %s", path, key))
		}
		seen[key] = true
		errs = append(errs, validateBlocks(path, w.Blocks)...)
	}
	errs = append(errs, validateBlocks("default_workout", c.DefaultWorkout.Blocks)...)

	hasHighSchool := false
	for i, s := range c.Study {
		path := fmt.Sprintf("study[%d]", i)
		if !domain.ValidAcademicLevels[s.Level] {
			errs = append(errs, fmt.Errorf("%s.level: invalid value %q", path, s.Level))
		}
		if s.Level == string(domain.LevelHighSchool) {
			hasHighSchool = true
		}
		if len(s.Categories) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one category is required", path))
		}
		for j, cat := range s.Categories {
			if cat.Name == "" {
				errs = append(errs, fmt.Errorf("%s.categories[%d].name is required", path, j))
			}
		}
	}
	if !hasHighSchool {
		errs = append(errs, fmt.Errorf("study: a %q template is required as the fallback", domain.LevelHighSchool))
	}

	for i, tip := range c.Tips {
		path := fmt.Sprintf("tips[%d]", i)
		if !domain.FocusArea(tip.Area).IsKnown() {
			errs = append(errs, fmt.Errorf("%s.area: unknown focus area %q", path, tip.Area))
		}
		if tip.Category == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", path))
		}
	}

	if len(c.SportTips) > 0 && c.SportTipsCategory == "" {
		errs = append(errs, fmt.Errorf("sport_tips_category is required when sport_tips are present"))
	}
	for i, st := range c.SportTips {
		if st.Sport == "" {
			errs = append(errs, fmt.Errorf("sport_tips[%d].sport is required", i))
		}
	}

	return errs
}

func validateBlocks(path string, blocks []WorkoutBlock) []error {
	var errs []error
	if len(blocks) != len(domain.WorkoutDays) {
		errs = append(errs, fmt.Errorf("%s: expected %d blocks, got %d", path, len(domain.WorkoutDays), len(blocks)))
	}
	for i, b := range blocks {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("%s.blocks[%d].name is required", path, i))
		}
	}
	return errs
}
