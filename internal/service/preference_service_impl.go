package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/alexanderramin/stuath/internal/repository"
)

type preferenceService struct {
	prefs repository.PreferenceRepo
}

func NewPreferenceService(prefs repository.PreferenceRepo) PreferenceService {
	return &preferenceService{prefs: prefs}
}

func (s *preferenceService) DarkMode(ctx context.Context) (bool, error) {
	return s.prefs.DarkMode(ctx)
}

func (s *preferenceService) SetDarkMode(ctx context.Context, on bool) error {
	return s.prefs.SetDarkMode(ctx, on)
}

func (s *preferenceService) ToggleDarkMode(ctx context.Context) (bool, error) {
	on, err := s.prefs.DarkMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.prefs.SetDarkMode(ctx, !on); err != nil {
		return on, err
	}
	return !on, nil
}

func (s *preferenceService) Language(ctx context.Context) (string, error) {
	return s.prefs.Language(ctx)
}

// SetLanguage stores the normalized code and returns it.
func (s *preferenceService) SetLanguage(ctx context.Context, code string) (string, error) {
	if !i18n.Supported(code) {
		_, err := i18n.New(code)
		return "", err
	}
	code = i18n.Normalize(code)
	if err := s.prefs.SetLanguage(ctx, code); err != nil {
		return "", fmt.Errorf("saving language: %w", err)
	}
	return code, nil
}

// ResolveLanguage never fails; a store error just skips the saved preference.
func (s *preferenceService) ResolveLanguage(ctx context.Context, override, system string) string {
	saved, err := s.prefs.Language(ctx)
	if err != nil {
		saved = ""
	}
	return i18n.Resolve(override, saved, system)
}
