package service

import (
	"context"
	"fmt"
	"strings"

	"rentora-backend/internal/authz"
	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type maintenanceService struct {
	maintRepo   repository.MaintenanceRepository
	rentalRepo  repository.RentalRepository
	propRepo    repository.PropertyRepository
	profileRepo repository.ProfileRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewMaintenanceService(
	maintRepo repository.MaintenanceRepository,
	rentalRepo repository.RentalRepository,
	propRepo repository.PropertyRepository,
	profileRepo repository.ProfileRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) MaintenanceService {
	return &maintenanceService{
		maintRepo:   maintRepo,
		rentalRepo:  rentalRepo,
		propRepo:    propRepo,
		profileRepo: profileRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

// Submit files a request against a rental the requester holds. Offline
// clients replay the whole request on reconnect without an idempotency
// key, so duplicate rows are accepted rather than deduplicated.
func (s *maintenanceService) Submit(ctx context.Context, requesterID string, input SubmitMaintenanceInput) (*domain.MaintenanceRequest, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, validationf("description is required")
	}
	if !input.Urgency.Valid() {
		return nil, validationf("urgency must be low, medium or high, got %q", input.Urgency)
	}

	rental, err := s.rentalRepo.GetByID(ctx, input.RentalID)
	if err != nil {
		return nil, notFoundOr(err, "rental")
	}
	if rental.TenantID != requesterID {
		return nil, fmt.Errorf("%w: rental belongs to another tenant", ErrForbidden)
	}
	if rental.PropertyID != input.PropertyID {
		return nil, validationf("rental does not match property %d", input.PropertyID)
	}

	req := &domain.MaintenanceRequest{
		PropertyID:  input.PropertyID,
		RentalID:    input.RentalID,
		TenantID:    requesterID,
		Description: input.Description,
		Category:    input.Category,
		Urgency:     input.Urgency,
		Status:      domain.MaintenanceStatusPending,
		Photos:      input.Photos,
	}
	if err := s.maintRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *maintenanceService) Assign(ctx context.Context, actorID string, requestID int64, caretakerID string) (*domain.MaintenanceRequest, error) {
	if caretakerID == "" {
		return nil, validationf("caretaker id is required")
	}

	req, err := s.maintRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, notFoundOr(err, "maintenance request")
	}
	prop, err := s.propRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, notFoundOr(err, "property")
	}
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanAssignMaintenance(role, actorID, prop.OwnerID) {
		return nil, fmt.Errorf("%w: only the property manager may assign caretakers", ErrForbidden)
	}

	caretaker, err := s.profileRepo.GetByID(ctx, caretakerID)
	if err != nil {
		return nil, notFoundOr(err, "caretaker")
	}
	if caretaker.Role.Normalize() != domain.RoleCaretaker {
		return nil, validationf("assignee is not a caretaker")
	}

	if err := s.maintRepo.Assign(ctx, requestID, caretakerID); err != nil {
		return nil, err
	}
	req.CaretakerID = &caretakerID
	req.Status = domain.MaintenanceStatusInProgress

	_ = s.emailSvc.SendMaintenanceAssignmentNotification(ctx, caretaker.Email, prop.Name, req.Description, string(req.Urgency))
	notif := &domain.Notification{
		UserID:  caretaker.ID,
		Title:   "Maintenance Assigned",
		Message: fmt.Sprintf("You were assigned a %s urgency request at %s", req.Urgency, prop.Name),
		Attributes: map[string]string{
			"type":       "MAINTENANCE_ASSIGNED",
			"request_id": fmt.Sprintf("%d", req.ID),
		},
	}
	_ = s.noteRepo.Create(ctx, notif)

	return req, nil
}

// Update lets the assigned caretaker change status and append progress
// notes and photos. The logs are append-only; repeated values append again.
func (s *maintenanceService) Update(ctx context.Context, actorID string, requestID int64, input UpdateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	req, err := s.maintRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, notFoundOr(err, "maintenance request")
	}
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanUpdateMaintenance(role, actorID, req.CaretakerID) {
		return nil, fmt.Errorf("%w: only the assigned caretaker may update this request", ErrForbidden)
	}

	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, validationf("unknown status %q", input.Status)
		}
		if err := s.maintRepo.SetStatus(ctx, requestID, input.Status); err != nil {
			return nil, err
		}
		req.Status = input.Status
	}

	if len(input.ProgressNotes) > 0 || len(input.Photos) > 0 {
		if err := s.maintRepo.AppendProgress(ctx, requestID, input.ProgressNotes, input.Photos); err != nil {
			return nil, err
		}
		req.ProgressNotes = append(req.ProgressNotes, input.ProgressNotes...)
		req.Photos = append(req.Photos, input.Photos...)
	}

	return req, nil
}

// Reopen moves a completed request back to pending. The mobile client has
// always offered this; it is gated the same way as assignment.
func (s *maintenanceService) Reopen(ctx context.Context, actorID string, requestID int64) (*domain.MaintenanceRequest, error) {
	req, err := s.maintRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, notFoundOr(err, "maintenance request")
	}
	prop, err := s.propRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, notFoundOr(err, "property")
	}
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanAssignMaintenance(role, actorID, prop.OwnerID) {
		return nil, fmt.Errorf("%w: only the property manager may reopen requests", ErrForbidden)
	}
	if req.Status != domain.MaintenanceStatusCompleted {
		return nil, conflictf("only completed requests can be reopened")
	}

	if err := s.maintRepo.SetStatus(ctx, requestID, domain.MaintenanceStatusPending); err != nil {
		return nil, err
	}
	req.Status = domain.MaintenanceStatusPending
	return req, nil
}

func (s *maintenanceService) List(ctx context.Context, actorID string) ([]domain.MaintenanceRequest, error) {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	switch role {
	case domain.RoleAdmin:
		return s.maintRepo.ListAll(ctx)
	case domain.RolePropertyManager:
		return s.maintRepo.ListByPropertyOwner(ctx, actorID)
	case domain.RoleCaretaker:
		return s.maintRepo.ListByCaretaker(ctx, actorID)
	case domain.RoleTenant:
		return s.maintRepo.ListByTenant(ctx, actorID)
	}
	return nil, fmt.Errorf("%w: unknown role", ErrForbidden)
}
