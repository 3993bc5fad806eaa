package service

import (
	"context"
	"fmt"
	"strings"

	"rentora-backend/internal/authz"
	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type propertyService struct {
	propRepo    repository.PropertyRepository
	profileRepo repository.ProfileRepository
}

func NewPropertyService(propRepo repository.PropertyRepository, profileRepo repository.ProfileRepository) PropertyService {
	return &propertyService{propRepo: propRepo, profileRepo: profileRepo}
}

func (s *propertyService) Create(ctx context.Context, actorID string, p *domain.Property) error {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return err
	}
	if !authz.CanCreateProperty(role) {
		return fmt.Errorf("%w: only property managers may create listings", ErrForbidden)
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Location) == "" {
		return validationf("name and location are required")
	}
	if p.PriceCents <= 0 {
		return validationf("price must be positive")
	}

	p.OwnerID = actorID
	p.Available = true
	return s.propRepo.Create(ctx, p)
}

func (s *propertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.propRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "property")
	}
	return p, nil
}

func (s *propertyService) List(ctx context.Context, actorID string) ([]domain.Property, error) {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	switch role {
	case domain.RoleAdmin:
		return s.propRepo.ListAll(ctx)
	case domain.RolePropertyManager:
		return s.propRepo.ListByOwner(ctx, actorID)
	case domain.RoleTenant, domain.RoleCaretaker:
		return s.propRepo.ListAvailable(ctx)
	}
	return s.propRepo.ListAvailable(ctx)
}
