// Package export writes and reads the portable JSON snapshot of a derived
// result.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/stuath/internal/domain"
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "stuath_schedule.json"

// Document is the export file layout. Field order here is the order of the
// top-level keys in the file.
type Document struct {
	UserData     domain.UserProfile    `json:"userData"`
	Schedule     domain.WeeklySchedule `json:"schedule"`
	WorkoutPlans domain.Sections       `json:"workoutPlans"`
	StudyPlans   domain.Sections       `json:"studyPlans"`
	Tips         domain.Sections       `json:"tips"`
}

func FromResult(r *domain.DerivedResult) Document {
	return Document{
		UserData:     r.Profile,
		Schedule:     r.Schedule,
		WorkoutPlans: r.Workouts,
		StudyPlans:   r.Study,
		Tips:         r.Tips,
	}
}

func (d Document) Result() *domain.DerivedResult {
	return &domain.DerivedResult{
		Profile:  d.UserData,
		Schedule: d.Schedule,
		Workouts: d.WorkoutPlans,
		Study:    d.StudyPlans,
		Tips:     d.Tips,
	}
}

// Encode writes r as two-space indented JSON. Characters such as & and < are
// written as-is.
func Encode(w io.Writer, r *domain.DerivedResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(FromResult(r)); err != nil {
		return fmt.Errorf("encoding export document: %w", err)
	}
	return nil
}

// Decode reads a document produced by Encode.
func Decode(r io.Reader) (*domain.DerivedResult, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding export document: %w", err)
	}
	if d.Schedule == nil {
		d.Schedule = domain.NewWeeklySchedule()
	}
	return d.Result(), nil
}

// WriteFile encodes r into path, or DefaultFileName when path is empty, and
// returns the path written.
func WriteFile(path string, r *domain.DerivedResult) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}
