package service

import (
	"context"
	"fmt"
	"strings"

	"rentora-backend/internal/authz"
	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type announcementService struct {
	annRepo     repository.AnnouncementRepository
	profileRepo repository.ProfileRepository
}

func NewAnnouncementService(annRepo repository.AnnouncementRepository, profileRepo repository.ProfileRepository) AnnouncementService {
	return &announcementService{annRepo: annRepo, profileRepo: profileRepo}
}

func (s *announcementService) Post(ctx context.Context, actorID, title, message string) (*domain.Announcement, error) {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanPostAnnouncement(role) {
		return nil, fmt.Errorf("%w: only admins may post announcements", ErrForbidden)
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return nil, validationf("title and message are required")
	}

	ann := &domain.Announcement{AdminID: actorID, Title: title, Message: message}
	if err := s.annRepo.Create(ctx, ann); err != nil {
		return nil, err
	}
	return ann, nil
}

func (s *announcementService) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.annRepo.List(ctx)
}
