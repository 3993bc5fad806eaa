package service

import (
	"context"
	"fmt"
	"strings"

	"rentora-backend/internal/authz"
	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type leaseService struct {
	leaseRepo   repository.LeaseRepository
	appRepo     repository.ApplicationRepository
	propRepo    repository.PropertyRepository
	profileRepo repository.ProfileRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewLeaseService(
	leaseRepo repository.LeaseRepository,
	appRepo repository.ApplicationRepository,
	propRepo repository.PropertyRepository,
	profileRepo repository.ProfileRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) LeaseService {
	return &leaseService{
		leaseRepo:   leaseRepo,
		appRepo:     appRepo,
		propRepo:    propRepo,
		profileRepo: profileRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *leaseService) Create(ctx context.Context, actorID, tenantID string, applicationID int64, leaseDocument string) (*domain.Lease, error) {
	if strings.TrimSpace(leaseDocument) == "" {
		return nil, validationf("lease document is required")
	}
	if tenantID == "" || applicationID == 0 {
		return nil, validationf("tenant id and application id are required")
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application")
	}
	if app.ApplicantID != tenantID {
		return nil, validationf("application does not belong to this tenant")
	}
	if app.Status != domain.ApplicationStatusApproved {
		return nil, validationf("application must be approved before a lease can be issued")
	}

	prop, err := s.propRepo.GetByID(ctx, app.PropertyID)
	if err != nil {
		return nil, notFoundOr(err, "property")
	}
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateLease(role, actorID, prop.OwnerID) {
		return nil, fmt.Errorf("%w: only the owning property manager may issue a lease", ErrForbidden)
	}

	// At most one lease per application.
	exists, err := s.leaseRepo.ExistsForApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictf("a lease already exists for application %d", applicationID)
	}

	lease := &domain.Lease{
		ManagerID:     actorID,
		TenantID:      tenantID,
		ApplicationID: applicationID,
		LeaseDocument: leaseDocument,
		Status:        domain.LeaseStatusSentToTenant,
	}
	if err := s.leaseRepo.Create(ctx, lease); err != nil {
		return nil, err
	}

	tenant, _ := s.profileRepo.GetByID(ctx, tenantID)
	manager, _ := s.profileRepo.GetByID(ctx, actorID)
	if tenant != nil && manager != nil {
		_ = s.emailSvc.SendLeaseSentNotification(ctx, tenant.Email, manager.FullName)
		notif := &domain.Notification{
			UserID:  tenant.ID,
			Title:   "Lease Ready to Sign",
			Message: fmt.Sprintf("%s sent you a lease agreement", manager.FullName),
			Attributes: map[string]string{
				"type":     "LEASE_SENT",
				"lease_id": fmt.Sprintf("%d", lease.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return lease, nil
}

// Update runs the lease state machine: the tenant signs, then the manager
// acknowledges. Transitions never skip a step.
func (s *leaseService) Update(ctx context.Context, actorID string, leaseID int64, input UpdateLeaseInput) (*domain.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		return nil, notFoundOr(err, "lease")
	}
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}

	// Manager path: acknowledge a tenant-signed lease.
	if input.Action != "" {
		if input.Action != "acknowledge" {
			return nil, validationf("unknown action %q", input.Action)
		}
		if !authz.CanAcknowledgeLease(role, actorID, lease.ManagerID) {
			return nil, fmt.Errorf("%w: only the issuing manager may acknowledge", ErrForbidden)
		}
		if lease.Status != domain.LeaseStatusSignedByTenant {
			return nil, validationf("lease must be signed by the tenant before acknowledgement")
		}
		lease.Status = domain.LeaseStatusAcknowledgedByManager
		if err := s.leaseRepo.Update(ctx, lease); err != nil {
			return nil, err
		}
		return lease, nil
	}

	// Tenant path: attach the signed document.
	if lease.TenantID != actorID {
		return nil, fmt.Errorf("%w: lease belongs to another tenant", ErrForbidden)
	}
	if strings.TrimSpace(input.SignedDocument) == "" {
		return nil, validationf("signed document is required")
	}
	if lease.Status != domain.LeaseStatusSentToTenant {
		return nil, validationf("lease is not awaiting tenant signature")
	}
	signed := input.SignedDocument
	lease.SignedDocument = &signed
	lease.Status = domain.LeaseStatusSignedByTenant
	if err := s.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}

	tenant, _ := s.profileRepo.GetByID(ctx, actorID)
	manager, _ := s.profileRepo.GetByID(ctx, lease.ManagerID)
	if tenant != nil && manager != nil {
		_ = s.emailSvc.SendLeaseSignedNotification(ctx, manager.Email, tenant.FullName)
		notif := &domain.Notification{
			UserID:  manager.ID,
			Title:   "Lease Signed",
			Message: fmt.Sprintf("%s signed the lease agreement", tenant.FullName),
			Attributes: map[string]string{
				"type":     "LEASE_SIGNED",
				"lease_id": fmt.Sprintf("%d", lease.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return lease, nil
}

func (s *leaseService) List(ctx context.Context, actorID string) ([]domain.LeaseWithApplication, error) {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	switch role {
	case domain.RoleAdmin:
		return s.leaseRepo.ListAll(ctx)
	case domain.RolePropertyManager:
		return s.leaseRepo.ListByManager(ctx, actorID)
	case domain.RoleTenant:
		return s.leaseRepo.ListByTenant(ctx, actorID)
	case domain.RoleCaretaker:
		return nil, fmt.Errorf("%w: caretakers have no lease access", ErrForbidden)
	}
	return nil, fmt.Errorf("%w: unknown role", ErrForbidden)
}
