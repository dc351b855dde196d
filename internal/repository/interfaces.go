package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/stuath/internal/domain"
)

// ErrNotFound is returned when a requested key or record does not exist.
var ErrNotFound = errors.New("not found")

// Persisted keys. Values written by older releases under these names stay readable.
const (
	KeyUserData = "stuath_user_data"
	KeyDarkMode = "stuath_dark_mode"
	KeyLanguage = "stuath_language"
)

// KVStore is the local key-value table every other repository sits on.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

type ProfileRepo interface {
	// Load returns ErrNotFound when no profile has been saved.
	Load(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context) error
}

type PreferenceRepo interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, on bool) error
	// Language returns "" when no language has been chosen.
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
}
