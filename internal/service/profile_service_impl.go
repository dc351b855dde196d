package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Saved(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.profiles.Load(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoSavedProfile
	}
	return p, err
}

func (s *profileService) Forget(ctx context.Context) error {
	return s.profiles.Delete(ctx)
}
