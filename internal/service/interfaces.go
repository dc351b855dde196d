package service

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/domain"
)

var (
	// ErrNoSavedProfile is returned when an operation needs the stored profile
	// and none exists.
	ErrNoSavedProfile = errors.New("no saved profile")
	// ErrNoResult is returned when nothing has been derived in this session.
	ErrNoResult = errors.New("no schedule has been generated")
)

type DerivationService interface {
	app.SubmitUseCase
	app.RegenerateUseCase
}

type ProfileService interface {
	Saved(ctx context.Context) (*domain.UserProfile, error)
	Forget(ctx context.Context) error
}

type PreferenceService interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, on bool) error
	ToggleDarkMode(ctx context.Context) (bool, error)
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) (string, error)
	// ResolveLanguage picks the display language: override, then the saved
	// preference, then the system language, then English.
	ResolveLanguage(ctx context.Context, override, system string) string
}

type ExportService interface {
	Write(ctx context.Context, w io.Writer, r *domain.DerivedResult) error
	WriteFile(ctx context.Context, path string, r *domain.DerivedResult) (string, error)
	// WriteCurrent exports the session's latest result.
	WriteCurrent(ctx context.Context, path string) (string, error)
}

type ResetService interface {
	// Reset removes every stored key and clears the session. It returns the
	// number of keys removed.
	Reset(ctx context.Context) (int, error)
}
