package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/alexanderramin/stuath/internal/repository"
	"github.com/alexanderramin/stuath/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_PersistsDerivesAndCommits(t *testing.T) {
	f := newFixture(t)
	fixed := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	svc := f.derivation(DerivationOptions{Now: func() time.Time { return fixed }})
	ctx := context.Background()

	resp, err := svc.Submit(ctx, app.NewSubmitRequest(athleteForm()))
	require.NoError(t, err)

	assert.Equal(t, fixed, resp.GeneratedAt)
	assert.Equal(t, "Jordan", resp.Result.Profile.Name)
	require.Len(t, resp.Dropped, 1)
	assert.Equal(t, "Chemistry Tue 10:00 AM", resp.Dropped[0].Line)
	assert.Equal(t, scheduler.ReasonMissingSeparator, resp.Dropped[0].Reason)
	assert.Equal(t, 1, resp.Summary.Classes)
	assert.Equal(t, 1, resp.Summary.Dropped)

	saved, err := f.profiles.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.Result.Profile, *saved)

	current, dropped, ok := f.session.Current()
	require.True(t, ok)
	assert.Same(t, resp.Result, current)
	assert.Equal(t, resp.Dropped, dropped)

	ev := f.observer.last()
	assert.Equal(t, "submit", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 1, ev.Fields["dropped_lines"])
}

func TestSubmit_EmptyFormStillProducesSchedule(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{})

	resp, err := svc.Submit(context.Background(), app.NewSubmitRequest(intake.Form{}))
	require.NoError(t, err)

	r := resp.Result
	assert.Equal(t, domain.LevelHighSchool, r.Profile.AcademicLevel)
	assert.Nil(t, r.Profile.StudyHours)
	assert.Len(t, r.Schedule, 7)
	assert.Equal(t, 3, r.Schedule.Count(domain.ItemWorkout))
	assert.Equal(t, 1, r.Schedule.Count(domain.ItemRest))
	assert.Zero(t, r.Schedule.Count(domain.ItemStudy))
	assert.Empty(t, r.Tips)
}

func TestSubmit_WaitsForDelay(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{Delay: 30 * time.Millisecond})

	start := time.Now()
	_, err := svc.Submit(context.Background(), app.NewSubmitRequest(athleteForm()))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSubmit_CancelledDuringDelayCommitsNothing(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	req := app.NewSubmitRequest(athleteForm())
	req.OnPending = func(app.Ticket) { cancel() }

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var serr *app.SubmitError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, app.SubmitErrCancelled, serr.Code)

	_, _, ok := f.session.Current()
	assert.False(t, ok, "a cancelled submission must not reach the display state")

	// The profile was saved before the wait started.
	_, err = f.profiles.Load(context.Background())
	assert.NoError(t, err)
	assert.False(t, f.observer.last().Success)
}

func TestSubmit_SupersededByNewerSubmission(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{Delay: 10 * time.Millisecond})

	req := app.NewSubmitRequest(athleteForm())
	req.OnPending = func(app.Ticket) { f.session.Begin() }

	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, app.ErrStaleTicket)

	var serr *app.SubmitError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, app.SubmitErrSuperseded, serr.Code)

	_, _, ok := f.session.Current()
	assert.False(t, ok)
}

func TestSubmit_SkipDelay(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{Delay: time.Hour})

	req := app.NewSubmitRequest(athleteForm())
	req.SkipDelay = true

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), req)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("submit waited despite SkipDelay")
	}
}

func TestNewDerivationService_DefaultsToRandomPicker(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{}).(*derivationService)

	assert.IsType(t, &scheduler.RandomPicker{}, svc.opts.NewPicker())
}

func TestRegenerate_UsesSavedProfile(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{
		NewPicker: func() scheduler.SlotPicker { return scheduler.NewRoundRobinPicker() },
	})
	ctx := context.Background()

	first, err := svc.Submit(ctx, app.NewSubmitRequest(athleteForm()))
	require.NoError(t, err)

	again, err := svc.Regenerate(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.Ticket, again.Ticket)
	assert.Equal(t, first.Result, again.Result, "round-robin slots are reproducible")
	assert.Equal(t, "regenerate", f.observer.last().Name)
}

func TestRegenerate_NoSavedProfile(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{})

	_, err := svc.Regenerate(context.Background())
	assert.ErrorIs(t, err, ErrNoSavedProfile)
}

func TestSubmit_ResubmitReplacesResult(t *testing.T) {
	f := newFixture(t)
	svc := f.derivation(DerivationOptions{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, app.NewSubmitRequest(athleteForm()))
	require.NoError(t, err)

	form := athleteForm()
	form.Set(intake.FieldName, "Taylor")
	_, err = svc.Submit(ctx, app.NewSubmitRequest(form))
	require.NoError(t, err)

	current, _, _ := f.session.Current()
	assert.Equal(t, "Taylor", current.Profile.Name)

	saved, err := repository.NewKVProfileRepo(f.kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Taylor", saved.Name)
}
