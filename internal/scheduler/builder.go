// Package scheduler derives the weekly agenda from a user profile: it parses
// class, practice and game lines, synthesizes study, workout and rest blocks,
// and orders each day by time.
package scheduler

import (
	"math"
	"strconv"

	"github.com/alexanderramin/stuath/internal/domain"
)

// Fixed titles and descriptions of generated items.
const (
	ClassDescription    = "academic class"
	PracticeTitle       = "Practice"
	PracticeDescription = "team practice session"
	GameDescription     = "competition/game"
	StudyTitle          = "Study Session"
	StudySuffix         = "hours focused study"
	WorkoutTitle        = "Personal Workout"
	WorkoutDescription  = "strength and conditioning training"
	RestTime            = "10:00 AM"
	RestTitle           = "Rest & Recovery"
	RestDescription     = "active recovery and relaxation"

	// StudySessionHours is the length of one synthesized study block.
	StudySessionHours = 1.5
)

// RestDays receive the fixed rest block.
var RestDays = []domain.Day{domain.Sunday}

// Builder assembles WeeklySchedules. It is not safe for concurrent use when
// its picker keeps state.
type Builder struct {
	picker SlotPicker
}

// NewBuilder creates a Builder that chooses study and workout times with picker.
func NewBuilder(picker SlotPicker) *Builder {
	return &Builder{picker: picker}
}

// Build merges classes, practices, games and synthesized blocks into a
// schedule with all seven days, each sorted by time. Lines that cannot be
// parsed are skipped and reported in the returned list; Build never fails.
func (b *Builder) Build(p *domain.UserProfile) (domain.WeeklySchedule, []Dropped) {
	schedule := domain.NewWeeklySchedule()
	var dropped []Dropped

	for _, line := range p.Classes {
		e, reason, ok := parseClass(line)
		if !ok {
			dropped = append(dropped, Dropped{Source: SourceClass, Line: line, Reason: reason})
			continue
		}
		schedule.Add(e.day, domain.ScheduleItem{
			Time:        e.time,
			Title:       e.title,
			Type:        domain.ItemClass,
			Description: ClassDescription,
		})
	}

	for _, line := range p.Practices {
		e, reason, ok := parseEvent(line)
		if !ok {
			dropped = append(dropped, Dropped{Source: SourcePractice, Line: line, Reason: reason})
			continue
		}
		schedule.Add(e.day, domain.ScheduleItem{
			Time:        e.time,
			Title:       PracticeTitle,
			Type:        domain.ItemPractice,
			Description: PracticeDescription,
		})
	}

	for _, line := range p.Games {
		e, reason, ok := parseEvent(line)
		if !ok {
			dropped = append(dropped, Dropped{Source: SourceGame, Line: line, Reason: reason})
			continue
		}
		schedule.Add(e.day, domain.ScheduleItem{
			Time:        e.time,
			Title:       e.title,
			Type:        domain.ItemGame,
			Description: GameDescription,
		})
	}

	if p.StudyHoursCapped() {
		dropped = append(dropped, Dropped{Source: SourceStudy, Line: strconv.Itoa(*p.StudyHours), Reason: ReasonCapped})
	}
	b.addStudySessions(schedule, p.WeeklyStudyHours())
	b.addWorkoutSessions(schedule)
	addRestSessions(schedule)

	SortWeek(schedule)
	return schedule, dropped
}

// StudySessionsPerDay returns ceil((hours/7)/1.5), or 0 for no hours.
// Hours beyond domain.MaxWeeklyStudyHours count as a full week.
func StudySessionsPerDay(weeklyHours int) int {
	if weeklyHours <= 0 {
		return 0
	}
	weeklyHours = min(weeklyHours, domain.MaxWeeklyStudyHours)
	perDay := float64(weeklyHours) / 7
	return int(math.Ceil(perDay / StudySessionHours))
}

// StudyDescription states the per-session study length, capped at 1.5 hours.
func StudyDescription(weeklyHours int) string {
	weeklyHours = min(weeklyHours, domain.MaxWeeklyStudyHours)
	perDay := float64(weeklyHours) / 7
	return strconv.FormatFloat(math.Min(StudySessionHours, perDay), 'f', -1, 64) + " " + StudySuffix
}

func (b *Builder) addStudySessions(s domain.WeeklySchedule, weeklyHours int) {
	n := StudySessionsPerDay(weeklyHours)
	if n == 0 {
		return
	}
	desc := StudyDescription(weeklyHours)
	for _, d := range domain.Days {
		for i := 0; i < n; i++ {
			s.Add(d, domain.ScheduleItem{
				Time:        b.picker.Pick(StudySlots),
				Title:       StudyTitle,
				Type:        domain.ItemStudy,
				Description: desc,
			})
		}
	}
}

func (b *Builder) addWorkoutSessions(s domain.WeeklySchedule) {
	for _, d := range domain.WorkoutDays {
		s.Add(d, domain.ScheduleItem{
			Time:        b.picker.Pick(WorkoutSlots),
			Title:       WorkoutTitle,
			Type:        domain.ItemWorkout,
			Description: WorkoutDescription,
		})
	}
}

func addRestSessions(s domain.WeeklySchedule) {
	for _, d := range RestDays {
		s.Add(d, domain.ScheduleItem{
			Time:        RestTime,
			Title:       RestTitle,
			Type:        domain.ItemRest,
			Description: RestDescription,
		})
	}
}
