package domain

// DerivedResult is everything produced from one form submission. It lives
// in memory only; the profile is the sole persisted part.
type DerivedResult struct {
	Profile  UserProfile
	Schedule WeeklySchedule
	Workouts Sections // day name -> exercises, Monday/Wednesday/Friday
	Study    Sections // strategy category -> tips
	Tips     Sections // tip category -> tips
}
