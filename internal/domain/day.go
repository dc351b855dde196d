package domain

import "strings"

// Day is a canonical English weekday name.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days lists the canonical days in week order, Monday first.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WorkoutDays are the days that receive a synthesized workout and a workout plan block.
var WorkoutDays = []Day{Monday, Wednesday, Friday}

// DayFromAbbrev maps a three-letter abbreviation (any case) to its canonical day.
func DayFromAbbrev(abbrev string) (Day, bool) {
	for _, d := range Days {
		if strings.EqualFold(string(d)[:3], abbrev) {
			return d, true
		}
	}
	return "", false
}

// ParseDay maps a full day name (any case, surrounding space ignored) to its canonical day.
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Days {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

// Index returns the position of d in Days, or -1 for a non-canonical name.
func (d Day) Index() int {
	for i, c := range Days {
		if c == d {
			return i
		}
	}
	return -1
}
