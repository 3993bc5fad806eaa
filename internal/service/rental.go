package service

import (
	"context"
	"fmt"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

// Rentals are created only by the application approval sequence; this
// service just exposes role-filtered reads.
type rentalService struct {
	rentalRepo  repository.RentalRepository
	profileRepo repository.ProfileRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, profileRepo repository.ProfileRepository) RentalService {
	return &rentalService{rentalRepo: rentalRepo, profileRepo: profileRepo}
}

func (s *rentalService) List(ctx context.Context, actorID string) ([]domain.Rental, error) {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	switch role {
	case domain.RoleAdmin:
		return s.rentalRepo.ListAll(ctx)
	case domain.RolePropertyManager:
		return s.rentalRepo.ListByPropertyOwner(ctx, actorID)
	case domain.RoleTenant:
		return s.rentalRepo.ListByTenant(ctx, actorID)
	case domain.RoleCaretaker:
		return nil, fmt.Errorf("%w: caretakers have no rental access", ErrForbidden)
	}
	return nil, fmt.Errorf("%w: unknown role", ErrForbidden)
}
