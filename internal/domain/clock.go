package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// Clock is a 12-hour wall-clock time.
type Clock struct {
	Hour   int // 1-12
	Minute int // 0-59
	PM     bool
}

// ParseClock parses "H:MM AM", "HH:MM pm", "9:00PM" and similar forms.
// Hours outside 1-12 and minutes outside 0-59 are rejected.
func ParseClock(s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Clock{}, fmt.Errorf("clock %q: expected H:MM AM|PM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 {
		return Clock{}, fmt.Errorf("clock %q: hour must be 1-12", s)
	}
	if minute > 59 {
		return Clock{}, fmt.Errorf("clock %q: minutes must be 0-59", s)
	}
	return Clock{Hour: hour, Minute: minute, PM: strings.EqualFold(m[3], "PM")}, nil
}

// String renders the canonical form, e.g. "9:05 AM".
func (c Clock) String() string {
	period := "AM"
	if c.PM {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", c.Hour, c.Minute, period)
}

// Minutes returns minutes since midnight. 12 AM is hour 0 and 12 PM is hour 12.
func (c Clock) Minutes() int {
	h := c.Hour
	switch {
	case c.PM && h != 12:
		h += 12
	case !c.PM && h == 12:
		h = 0
	}
	return h*60 + c.Minute
}

// ClockMinutes returns minutes since midnight for a time string.
// Unparseable strings sort after every valid time.
func ClockMinutes(s string) int {
	c, err := ParseClock(s)
	if err != nil {
		return math.MaxInt
	}
	return c.Minutes()
}
