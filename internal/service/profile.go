package service

import (
	"context"
	"database/sql"
	"errors"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "profile")
	}
	return p, nil
}

func (s *profileService) AssignRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error) {
	if !role.Valid() {
		return nil, validationf("unknown role %q", role)
	}
	ok, err := s.profileRepo.AssignRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, conflictf("role already assigned")
	}
	return s.Get(ctx, id)
}

// resolveRole fetches the principal's role for an authorization check.
// A missing profile row or an empty role both resolve to tenant, the
// lowest-privilege role.
func resolveRole(ctx context.Context, repo repository.ProfileRepository, principalID string) (domain.Role, error) {
	p, err := repo.GetByID(ctx, principalID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RoleTenant, nil
	}
	if err != nil {
		return domain.RoleUnset, err
	}
	return p.Role.Normalize(), nil
}
