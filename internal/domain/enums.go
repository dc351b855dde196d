package domain

type ItemType string

const (
	ItemClass    ItemType = "class"
	ItemPractice ItemType = "practice"
	ItemGame     ItemType = "game"
	ItemStudy    ItemType = "study"
	ItemWorkout  ItemType = "workout"
	ItemRest     ItemType = "rest"
)

type AcademicLevel string

const (
	LevelHighSchool    AcademicLevel = "highschool"
	LevelUndergraduate AcademicLevel = "undergraduate"
)

// ValidAcademicLevels is the canonical set of accepted academic level strings.
var ValidAcademicLevels = map[string]bool{
	"highschool": true, "undergraduate": true,
}

type TrainingLevel string

const (
	TrainingRecreational TrainingLevel = "recreational"
	TrainingCompetitive  TrainingLevel = "competitive"
)

// ValidTrainingLevels is the canonical set of accepted training level strings.
var ValidTrainingLevels = map[string]bool{
	"recreational": true, "competitive": true,
}

type FocusArea string

const (
	FocusAcademic FocusArea = "academic"
	FocusAthletic FocusArea = "athletic"
	FocusRecovery FocusArea = "recovery"
	FocusSocial   FocusArea = "social"
)

// FocusAreas lists the focus areas in canonical order. Tip categories are
// always emitted in this order regardless of selection order.
var FocusAreas = []FocusArea{FocusAcademic, FocusAthletic, FocusRecovery, FocusSocial}

// IsKnown reports whether f is one of the four canonical focus areas.
func (f FocusArea) IsKnown() bool {
	for _, a := range FocusAreas {
		if a == f {
			return true
		}
	}
	return false
}
