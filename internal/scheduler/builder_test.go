package scheduler

import (
	"math"
	"strconv"
	"testing"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int { return &i }

func itemsOfType(items []domain.ScheduleItem, typ domain.ItemType) []domain.ScheduleItem {
	var out []domain.ScheduleItem
	for _, it := range items {
		if it.Type == typ {
			out = append(out, it)
		}
	}
	return out
}

func TestBuild_ClassLine(t *testing.T) {
	p := &domain.UserProfile{Classes: []string{"Algebra - Mon 9:00 AM"}}

	s, dropped := NewBuilder(NewRoundRobinPicker()).Build(p)

	assert.Empty(t, dropped)
	classes := itemsOfType(s[domain.Monday], domain.ItemClass)
	require.Len(t, classes, 1)
	assert.Equal(t, domain.ScheduleItem{
		Time:        "9:00 AM",
		Title:       "Algebra",
		Type:        domain.ItemClass,
		Description: ClassDescription,
	}, classes[0])
}

func TestBuild_ClassLineWithoutSeparatorIsDropped(t *testing.T) {
	p := &domain.UserProfile{Classes: []string{"Algebra Mon 9:00 AM"}}

	s, dropped := NewBuilder(NewRoundRobinPicker()).Build(p)

	assert.Equal(t, 0, s.Count(domain.ItemClass))
	require.Len(t, dropped, 1)
	assert.Equal(t, Dropped{Source: SourceClass, Line: "Algebra Mon 9:00 AM", Reason: ReasonMissingSeparator}, dropped[0])
}

func TestBuild_PracticeLine(t *testing.T) {
	p := &domain.UserProfile{Practices: []string{
		"Practice at 4:00 PM on Wednesday",
		"Practice at 4:00 PM",
	}}

	s, dropped := NewBuilder(NewRoundRobinPicker()).Build(p)

	assert.Equal(t, 1, s.Count(domain.ItemPractice))
	practices := itemsOfType(s[domain.Wednesday], domain.ItemPractice)
	require.Len(t, practices, 1)
	assert.Equal(t, "4:00 PM", practices[0].Time)
	assert.Equal(t, PracticeTitle, practices[0].Title)
	assert.Equal(t, PracticeDescription, practices[0].Description)

	require.Len(t, dropped, 1)
	assert.Equal(t, ReasonMissingDay, dropped[0].Reason)
	assert.Equal(t, SourcePractice, dropped[0].Source)
}

func TestBuild_GameTitleIsWholeLine(t *testing.T) {
	line := "Home vs Eagles Saturday 1:00 PM"
	p := &domain.UserProfile{Games: []string{line}}

	s, _ := NewBuilder(NewRoundRobinPicker()).Build(p)

	games := itemsOfType(s[domain.Saturday], domain.ItemGame)
	require.Len(t, games, 1)
	assert.Equal(t, line, games[0].Title)
	assert.Equal(t, "1:00 PM", games[0].Time)
	assert.Equal(t, GameDescription, games[0].Description)
}

func TestBuild_StudySessions(t *testing.T) {
	p := &domain.UserProfile{StudyHours: ptrInt(10)}

	s, _ := NewBuilder(NewRoundRobinPicker()).Build(p)

	assert.Equal(t, 1, StudySessionsPerDay(10))
	for _, d := range domain.Days {
		study := itemsOfType(s[d], domain.ItemStudy)
		require.Len(t, study, 1, d)
		assert.Equal(t, StudyTitle, study[0].Title)
		assert.Equal(t, "1.4285714285714286 hours focused study", study[0].Description)
		assert.Contains(t, StudySlots, study[0].Time)
	}
}

func TestBuild_StudySessionsCappedDescription(t *testing.T) {
	assert.Equal(t, 2, StudySessionsPerDay(21))
	assert.Equal(t, "1.5 hours focused study", StudyDescription(21))
	assert.Equal(t, 0, StudySessionsPerDay(0))
	assert.Equal(t, 0, StudySessionsPerDay(-4))
}

func TestBuild_StudyHoursCappedAtOneWeek(t *testing.T) {
	p := &domain.UserProfile{StudyHours: ptrInt(math.MaxInt)}

	s, dropped := NewBuilder(NewRoundRobinPicker()).Build(p)

	assert.Equal(t, 16, StudySessionsPerDay(math.MaxInt))
	assert.Equal(t, StudySessionsPerDay(domain.MaxWeeklyStudyHours), StudySessionsPerDay(1_000_000))
	assert.Equal(t, "1.5 hours focused study", StudyDescription(1_000_000))
	assert.Equal(t, 7*16, s.Count(domain.ItemStudy))
	require.Len(t, dropped, 1)
	assert.Equal(t, Dropped{Source: SourceStudy, Line: strconv.Itoa(math.MaxInt), Reason: ReasonCapped}, dropped[0])
}

func TestBuild_StudyHoursWithinWeekNotReported(t *testing.T) {
	_, dropped := NewBuilder(NewRoundRobinPicker()).Build(&domain.UserProfile{StudyHours: ptrInt(domain.MaxWeeklyStudyHours)})
	assert.Empty(t, dropped)
}

func TestBuild_NonNumericStudyHoursYieldsNoStudy(t *testing.T) {
	s, _ := NewBuilder(NewRoundRobinPicker()).Build(&domain.UserProfile{StudyHours: nil})
	assert.Equal(t, 0, s.Count(domain.ItemStudy))
}

func TestBuild_WorkoutsOnlyMondayWednesdayFriday(t *testing.T) {
	s, _ := NewBuilder(NewRandomPicker(7)).Build(&domain.UserProfile{})

	for _, d := range domain.Days {
		workouts := itemsOfType(s[d], domain.ItemWorkout)
		switch d {
		case domain.Monday, domain.Wednesday, domain.Friday:
			require.Len(t, workouts, 1, d)
			assert.Equal(t, WorkoutTitle, workouts[0].Title)
			assert.Contains(t, WorkoutSlots, workouts[0].Time)
		default:
			assert.Empty(t, workouts, d)
		}
	}
}

func TestBuild_RestOnSundayOnly(t *testing.T) {
	s, _ := NewBuilder(NewRoundRobinPicker()).Build(&domain.UserProfile{})

	assert.Equal(t, 1, s.Count(domain.ItemRest))
	rest := itemsOfType(s[domain.Sunday], domain.ItemRest)
	require.Len(t, rest, 1)
	assert.Equal(t, domain.ScheduleItem{
		Time: RestTime, Title: RestTitle, Type: domain.ItemRest, Description: RestDescription,
	}, rest[0])
}

func TestBuild_RoundRobinSlotSequenceIsReproducible(t *testing.T) {
	p := &domain.UserProfile{StudyHours: ptrInt(10)}

	s, _ := NewBuilder(NewRoundRobinPicker()).Build(p)

	wantStudy := map[domain.Day]string{
		domain.Monday:    "8:00 AM",
		domain.Tuesday:   "2:00 PM",
		domain.Wednesday: "7:00 PM",
		domain.Thursday:  "9:00 PM",
		domain.Friday:    "8:00 AM",
		domain.Saturday:  "2:00 PM",
		domain.Sunday:    "7:00 PM",
	}
	for d, want := range wantStudy {
		study := itemsOfType(s[d], domain.ItemStudy)
		require.Len(t, study, 1)
		assert.Equal(t, want, study[0].Time, d)
	}

	wantWorkout := map[domain.Day]string{
		domain.Monday:    "6:00 AM",
		domain.Wednesday: "5:00 PM",
		domain.Friday:    "6:30 PM",
	}
	for d, want := range wantWorkout {
		workouts := itemsOfType(s[d], domain.ItemWorkout)
		require.Len(t, workouts, 1)
		assert.Equal(t, want, workouts[0].Time, d)
	}
}

func TestBuild_SeededRandomIsReproducible(t *testing.T) {
	p := &domain.UserProfile{StudyHours: ptrInt(30)}

	a, _ := NewBuilder(NewRandomPicker(99)).Build(p)
	b, _ := NewBuilder(NewRandomPicker(99)).Build(p)

	assert.Equal(t, a, b)
}

func TestBuild_DaysSortedAndTiesStable(t *testing.T) {
	p := &domain.UserProfile{
		Classes:    []string{"Late Seminar - Mon 8:00 PM", "Early Lab - Mon 8:00 AM"},
		StudyHours: ptrInt(10),
	}

	s, _ := NewBuilder(NewRoundRobinPicker()).Build(p)

	monday := s[domain.Monday]
	var times, titles []string
	for _, it := range monday {
		times = append(times, it.Time)
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"6:00 AM", "8:00 AM", "8:00 AM", "8:00 PM"}, times)
	assert.Equal(t, []string{WorkoutTitle, "Early Lab", StudyTitle, "Late Seminar"}, titles,
		"the class was added before the study block, so it stays first at 8:00 AM")
}
