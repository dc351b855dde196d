package service

import (
	"github.com/alexanderramin/stuath/internal/catalog"
	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/scheduler"
)

// Derive computes the full result for a profile. It has no side effects
// beyond advancing picker state, and never fails: malformed lines are
// reported in the returned list instead.
func Derive(p *domain.UserProfile, c *catalog.Catalog, picker scheduler.SlotPicker) (*domain.DerivedResult, []scheduler.Dropped) {
	schedule, dropped := scheduler.NewBuilder(picker).Build(p)
	return &domain.DerivedResult{
		Profile:  *p,
		Schedule: schedule,
		Workouts: c.SelectWorkoutPlan(p),
		Study:    c.SelectStudyPlan(p),
		Tips:     c.SelectTips(p),
	}, dropped
}
