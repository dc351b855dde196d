package scheduler

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

var (
	timeToken  = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(AM|PM)`)
	dayAbbrev  = regexp.MustCompile(`(?i)Mon|Tue|Wed|Thu|Fri|Sat|Sun`)
	classSplit = " - "
)

// DropReason explains why an input line produced no schedule item.
type DropReason string

const (
	ReasonMissingSeparator DropReason = "missing_separator"
	ReasonMissingDay       DropReason = "missing_day"
	ReasonMissingTime      DropReason = "missing_time"
	ReasonInvalidTime      DropReason = "invalid_time"
	ReasonCapped           DropReason = "capped"
)

// Source identifies which form field a line came from.
type Source string

const (
	SourceClass    Source = "class"
	SourcePractice Source = "practice"
	SourceGame     Source = "game"
	SourceStudy    Source = "study_hours"
)

// Dropped records an input line that was discarded.
type Dropped struct {
	Source Source
	Line   string
	Reason DropReason
}

// entry is a successfully parsed line.
type entry struct {
	day   domain.Day
	time  string
	title string
}

// parseClass reads "Title - <day abbrev> <H:MM AM|PM>". Only the text between
// the first and second separator is searched for the day and time.
func parseClass(line string) (entry, DropReason, bool) {
	parts := strings.Split(line, classSplit)
	if len(parts) < 2 {
		return entry{}, ReasonMissingSeparator, false
	}
	title, when := parts[0], parts[1]

	abbrev := dayAbbrev.FindString(when)
	if abbrev == "" {
		return entry{}, ReasonMissingDay, false
	}
	day, ok := domain.DayFromAbbrev(abbrev)
	if !ok {
		return entry{}, ReasonMissingDay, false
	}

	t, reason, ok := findTime(when)
	if !ok {
		return entry{}, reason, false
	}
	return entry{day: day, time: t, title: title}, "", true
}

// parseEvent reads a free-form practice or game line: any full day name
// anywhere in the text plus a time token.
func parseEvent(line string) (entry, DropReason, bool) {
	t, reason, ok := findTime(line)
	if !ok {
		return entry{}, reason, false
	}
	day, ok := findFullDay(line)
	if !ok {
		return entry{}, ReasonMissingDay, false
	}
	return entry{day: day, time: t, title: line}, "", true
}

// findTime returns the canonical form of the first time token in s.
func findTime(s string) (string, DropReason, bool) {
	tok := timeToken.FindString(s)
	if tok == "" {
		return "", ReasonMissingTime, false
	}
	c, err := domain.ParseClock(tok)
	if err != nil {
		return "", ReasonInvalidTime, false
	}
	return c.String(), "", true
}

// findFullDay checks day names in week order, so "Monday and Wednesday"
// resolves to Monday and "Saturday vs Tuesday" to Tuesday.
func findFullDay(s string) (domain.Day, bool) {
	lower := strings.ToLower(s)
	for _, d := range domain.Days {
		if strings.Contains(lower, strings.ToLower(string(d))) {
			return d, true
		}
	}
	return "", false
}
