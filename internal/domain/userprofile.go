package domain

import "strings"

// UserProfile is the normalized form submission. It is persisted verbatim
// and never mutated after derivation starts.
type UserProfile struct {
	Name          string        `json:"name"`
	Sport         string        `json:"sport"`
	Classes       []string      `json:"classes"`
	StudyHours    *int          `json:"studyHours"` // nil when the input was not a number
	AcademicLevel AcademicLevel `json:"academicLevel"`
	Practices     []string      `json:"practices"`
	Games         []string      `json:"games"`
	TrainingLevel TrainingLevel `json:"trainingLevel"`
	Goals         string        `json:"goals"`
	WakeTime      string        `json:"wakeTime"`
	SleepTime     string        `json:"sleepTime"`
	FocusAreas    []FocusArea   `json:"focusAreas"`
}

// SportKey is the case-insensitive lookup key for sport tables.
func (p *UserProfile) SportKey() string {
	return strings.ToLower(strings.TrimSpace(p.Sport))
}

// MaxWeeklyStudyHours is the number of hours in a week.
const MaxWeeklyStudyHours = 168

// WeeklyStudyHours returns the study hours as a number, treating a
// non-numeric or negative submission as zero and capping it at
// MaxWeeklyStudyHours.
func (p *UserProfile) WeeklyStudyHours() int {
	if p.StudyHours == nil || *p.StudyHours < 0 {
		return 0
	}
	return min(*p.StudyHours, MaxWeeklyStudyHours)
}

// StudyHoursCapped reports whether the submitted hours exceed a week.
func (p *UserProfile) StudyHoursCapped() bool {
	return p.StudyHours != nil && *p.StudyHours > MaxWeeklyStudyHours
}

// HasFocus reports whether the user selected the given focus area.
func (p *UserProfile) HasFocus(area FocusArea) bool {
	for _, a := range p.FocusAreas {
		if a == area {
			return true
		}
	}
	return false
}
