package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ScheduleItem struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Type        ItemType `json:"type"`
	Description string   `json:"description"`
}

// WeeklySchedule maps each canonical day to its agenda. A schedule built with
// NewWeeklySchedule or decoded from JSON always holds all seven days.
type WeeklySchedule map[Day][]ScheduleItem

// NewWeeklySchedule returns a schedule with every canonical day present and empty.
func NewWeeklySchedule() WeeklySchedule {
	s := make(WeeklySchedule, len(Days))
	for _, d := range Days {
		s[d] = []ScheduleItem{}
	}
	return s
}

// Add appends an item to a canonical day. Non-canonical days are ignored and
// reported as false.
func (s WeeklySchedule) Add(day Day, item ScheduleItem) bool {
	if day.Index() < 0 {
		return false
	}
	s[day] = append(s[day], item)
	return true
}

// Count returns the number of items of the given type across the week.
func (s WeeklySchedule) Count(t ItemType) int {
	n := 0
	for _, items := range s {
		for _, it := range items {
			if it.Type == t {
				n++
			}
		}
	}
	return n
}

// MarshalJSON writes days in canonical week order.
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Days {
		if i > 0 {
			buf.WriteByte(',')
		}
		items := s[d]
		if items == nil {
			items = []ScheduleItem{}
		}
		if err := writeMember(&buf, string(d), items); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an object keyed by canonical day names. Missing days
// are filled in empty; unknown day names are rejected.
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string][]ScheduleItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := NewWeeklySchedule()
	for name, items := range raw {
		day := Day(name)
		if day.Index() < 0 {
			return fmt.Errorf("weekly schedule: unknown day %q", name)
		}
		if items == nil {
			items = []ScheduleItem{}
		}
		out[day] = items
	}
	*s = out
	return nil
}
