package testutil

import (
	"github.com/alexanderramin/stuath/internal/domain"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithSport(sport string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Sport = sport
	}
}

func WithClasses(lines ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Classes = lines
	}
}

func WithPractices(lines ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Practices = lines
	}
}

func WithGames(lines ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Games = lines
	}
}

func WithStudyHours(h int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.StudyHours = &h
	}
}

// WithoutStudyHours models a non-numeric study hours submission.
func WithoutStudyHours() ProfileOption {
	return func(p *domain.UserProfile) {
		p.StudyHours = nil
	}
}

func WithLevels(academic domain.AcademicLevel, training domain.TrainingLevel) ProfileOption {
	return func(p *domain.UserProfile) {
		p.AcademicLevel = academic
		p.TrainingLevel = training
	}
}

func WithFocus(areas ...domain.FocusArea) ProfileOption {
	return func(p *domain.UserProfile) {
		p.FocusAreas = areas
	}
}

// NewTestProfile returns a small, fully valid profile: one class, one
// practice, one game, 7 study hours, no focus areas.
func NewTestProfile(name string, opts ...ProfileOption) *domain.UserProfile {
	hours := 7
	p := &domain.UserProfile{
		Name:          name,
		Sport:         "basketball",
		Classes:       []string{"Math 101 - Mon 9:00 AM"},
		StudyHours:    &hours,
		AcademicLevel: domain.LevelHighSchool,
		Practices:     []string{"Tuesday 3:30 PM"},
		Games:         []string{"Saturday 1:00 PM vs Rivals"},
		TrainingLevel: domain.TrainingRecreational,
		Goals:         "make varsity",
		WakeTime:      "6:30",
		SleepTime:     "22:30",
		FocusAreas:    []domain.FocusArea{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
