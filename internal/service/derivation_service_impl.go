package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/catalog"
	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/alexanderramin/stuath/internal/repository"
	"github.com/alexanderramin/stuath/internal/scheduler"
)

// DerivationOptions tunes a DerivationService.
type DerivationOptions struct {
	// Delay is the simulated loading wait between saving the profile and
	// showing results. Zero disables it.
	Delay time.Duration
	// NewPicker returns the slot picker for one derivation. Defaults to a
	// random picker seeded from the clock.
	NewPicker func() scheduler.SlotPicker
	// Now defaults to time.Now.
	Now func() time.Time
}

type derivationService struct {
	profiles repository.ProfileRepo
	session  *app.Session
	catalog  *catalog.Catalog
	opts     DerivationOptions
	observer UseCaseObserver
}

func NewDerivationService(
	profiles repository.ProfileRepo,
	session *app.Session,
	c *catalog.Catalog,
	opts DerivationOptions,
	observers ...UseCaseObserver,
) DerivationService {
	if opts.NewPicker == nil {
		opts.NewPicker = func() scheduler.SlotPicker { return scheduler.NewRandomPicker(time.Now().UnixNano()) }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if c == nil {
		c = catalog.Default()
	}
	return &derivationService{
		profiles: profiles,
		session:  session,
		catalog:  c,
		opts:     opts,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *derivationService) Submit(ctx context.Context, req app.SubmitRequest) (resp *app.SubmitResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"delay_ms": s.opts.Delay.Milliseconds()}
	defer func() {
		s.observe(ctx, "submit", startedAt, fields, resp, err)
	}()

	profile := intake.Normalize(req.Form)
	if err = s.profiles.Save(ctx, &profile); err != nil {
		return nil, &app.SubmitError{Code: app.SubmitErrPersist, Message: "saving profile", Err: err}
	}

	ticket := s.session.Begin()
	if req.OnPending != nil {
		req.OnPending(ticket)
	}

	if !req.SkipDelay && s.opts.Delay > 0 {
		timer := time.NewTimer(s.opts.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.session.Cancel()
			return nil, &app.SubmitError{Code: app.SubmitErrCancelled, Message: "submission cancelled", Err: ctx.Err()}
		case <-timer.C:
		}
	}

	return s.deriveAndCommit(ticket, &profile)
}

func (s *derivationService) Regenerate(ctx context.Context) (resp *app.SubmitResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, "regenerate", startedAt, fields, resp, err)
	}()

	profile, err := s.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.SubmitError{Code: app.SubmitErrNoProfile, Message: "nothing to regenerate", Err: ErrNoSavedProfile}
		}
		return nil, fmt.Errorf("loading saved profile: %w", err)
	}

	return s.deriveAndCommit(s.session.Begin(), profile)
}

func (s *derivationService) deriveAndCommit(ticket app.Ticket, profile *domain.UserProfile) (*app.SubmitResponse, error) {
	if !s.session.Pending(ticket) {
		return nil, &app.SubmitError{Code: app.SubmitErrSuperseded, Message: "a newer submission started", Err: app.ErrStaleTicket}
	}

	result, dropped := Derive(profile, s.catalog, s.opts.NewPicker())
	now := s.opts.Now()
	if err := s.session.Commit(ticket, result, dropped, now); err != nil {
		return nil, &app.SubmitError{Code: app.SubmitErrSuperseded, Message: "a newer submission started", Err: err}
	}

	return &app.SubmitResponse{
		GeneratedAt: now,
		Ticket:      ticket,
		Result:      result,
		Dropped:     dropped,
		Summary:     app.Summarize(result, len(dropped)),
	}, nil
}

func (s *derivationService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, resp *app.SubmitResponse, err error) {
	if resp != nil {
		for k, v := range resp.Summary.Fields() {
			fields[k] = v
		}
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
