package scheduler

import (
	"sort"

	"github.com/alexanderramin/stuath/internal/domain"
)

// SortAgenda stable-sorts items by minutes since midnight. Items at the same
// time keep their insertion order.
func SortAgenda(items []domain.ScheduleItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return domain.ClockMinutes(items[i].Time) < domain.ClockMinutes(items[j].Time)
	})
}

// SortWeek applies SortAgenda to every day.
func SortWeek(s domain.WeeklySchedule) {
	for _, d := range domain.Days {
		SortAgenda(s[d])
	}
}
