package repository

import (
	"context"
	"errors"
	"fmt"
)

// KVPreferenceRepo stores display preferences as plain text values.
type KVPreferenceRepo struct {
	kv KVStore
}

func NewKVPreferenceRepo(kv KVStore) *KVPreferenceRepo {
	return &KVPreferenceRepo{kv: kv}
}

// DarkMode defaults to on. An absent or unreadable flag is written back as
// "true" so the stored state matches what is displayed.
func (r *KVPreferenceRepo) DarkMode(ctx context.Context) (bool, error) {
	raw, err := r.kv.Get(ctx, KeyDarkMode)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return true, err
	}
	if err == nil {
		if on, ok := stringToBool(raw); ok {
			return on, nil
		}
	}
	if err := r.kv.Set(ctx, KeyDarkMode, boolToString(true)); err != nil {
		return true, fmt.Errorf("storing default dark mode: %w", err)
	}
	return true, nil
}

func (r *KVPreferenceRepo) SetDarkMode(ctx context.Context, on bool) error {
	return r.kv.Set(ctx, KeyDarkMode, boolToString(on))
}

func (r *KVPreferenceRepo) Language(ctx context.Context) (string, error) {
	code, err := r.kv.Get(ctx, KeyLanguage)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return code, err
}

func (r *KVPreferenceRepo) SetLanguage(ctx context.Context, code string) error {
	return r.kv.Set(ctx, KeyLanguage, code)
}
