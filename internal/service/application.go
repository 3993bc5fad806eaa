package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentora-backend/internal/authz"
	"rentora-backend/internal/domain"
	"rentora-backend/internal/logger"
	"rentora-backend/internal/repository"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	propRepo    repository.PropertyRepository
	rentalRepo  repository.RentalRepository
	profileRepo repository.ProfileRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	propRepo repository.PropertyRepository,
	rentalRepo repository.RentalRepository,
	profileRepo repository.ProfileRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		propRepo:    propRepo,
		rentalRepo:  rentalRepo,
		profileRepo: profileRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *applicationService) Submit(ctx context.Context, applicantID string, input SubmitApplicationInput) (*domain.Application, error) {
	if !input.LeaseAgreed {
		return nil, validationf("lease terms must be agreed before submitting")
	}
	if input.PropertyID == 0 {
		return nil, validationf("property id is required")
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, validationf("first and last name are required")
	}
	if strings.TrimSpace(input.PhoneNumber) == "" {
		return nil, validationf("phone number is required")
	}
	if strings.TrimSpace(input.IDNumber) == "" {
		return nil, validationf("id number is required")
	}
	if input.Age <= 0 {
		return nil, validationf("age is required")
	}

	// The property must exist, but availability is only enforced at
	// approval time; multiple tenants may apply for the same listing.
	prop, err := s.propRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, notFoundOr(err, "property")
	}

	app := &domain.Application{
		PropertyID:   input.PropertyID,
		ApplicantID:  applicantID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		IDNumber:     input.IDNumber,
		Age:          input.Age,
		JobTitle:     input.JobTitle,
		IncomeCents:  input.IncomeCents,
		IncomeSource: input.IncomeSource,
		LeaseAgreed:  input.LeaseAgreed,
		Documents:    input.Documents,
		Notes:        input.Notes,
		Status:       domain.ApplicationStatusPending,
		SubmittedAt:  time.Now(),
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	// Notify the property manager (best effort).
	owner, _ := s.profileRepo.GetByID(ctx, prop.OwnerID)
	if owner != nil {
		applicantName := fmt.Sprintf("%s %s", app.FirstName, app.LastName)
		_ = s.emailSvc.SendApplicationReceivedNotification(ctx, owner.Email, applicantName, prop.Name)
		notif := &domain.Notification{
			UserID:  owner.ID,
			Title:   "New Rental Application",
			Message: fmt.Sprintf("%s applied for %s", applicantName, prop.Name),
			Attributes: map[string]string{
				"type":           "APPLICATION_SUBMITTED",
				"application_id": fmt.Sprintf("%d", app.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return app, nil
}

// Decide moves a pending application to approved or rejected. Approval is
// the only multi-step write in the system: the store offers no cross-table
// transactions, so the sequence runs forward and compensates on failure.
func (s *applicationService) Decide(ctx context.Context, actorID string, applicationID int64, status domain.ApplicationStatus, notes string) (*domain.Application, *domain.Rental, error) {
	if status != domain.ApplicationStatusApproved && status != domain.ApplicationStatusRejected {
		return nil, nil, validationf("status must be approved or rejected, got %q", status)
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, notFoundOr(err, "application")
	}
	prop, err := s.propRepo.GetByID(ctx, app.PropertyID)
	if err != nil {
		return nil, nil, notFoundOr(err, "property")
	}

	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, nil, err
	}
	if !authz.CanDecideApplication(role, actorID, prop.OwnerID) {
		return nil, nil, fmt.Errorf("%w: only the owning property manager may decide applications", ErrForbidden)
	}
	if app.Status != domain.ApplicationStatusPending {
		return nil, nil, conflictf("application already %s", app.Status)
	}

	if status == domain.ApplicationStatusRejected {
		ok, err := s.appRepo.SetDecision(ctx, applicationID, status, notes, nil)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, conflictf("application already decided")
		}
		app.Status = domain.ApplicationStatusRejected
		app.Notes = notes
		s.notifyDecision(ctx, app, prop, false)
		return app, nil, nil
	}

	// Approval sequence. The availability snapshot from the fetch above is
	// advisory; the conditional MarkUnavailable below is the real gate.
	if !prop.Available {
		return nil, nil, conflictf("property is no longer available")
	}

	rental := &domain.Rental{
		PropertyID: app.PropertyID,
		TenantID:   app.ApplicantID,
		StartDate:  time.Now(),
		Status:     domain.RentalStatusActive,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, nil, fmt.Errorf("creating rental: %w", err)
	}

	claimed, err := s.propRepo.MarkUnavailable(ctx, prop.ID)
	if err != nil || !claimed {
		// Another approval won the race, or the write failed. Either way
		// the rental row must not survive.
		if derr := s.rentalRepo.Delete(ctx, rental.ID); derr != nil {
			logger.Error("compensation failed: orphan rental left behind",
				"rental_id", rental.ID, "property_id", prop.ID, "error", derr)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("marking property unavailable: %w", err)
		}
		return nil, nil, conflictf("property was claimed by another approval")
	}

	approvedAt := time.Now()
	finalNotes := notes
	if finalNotes != "" {
		finalNotes += " "
	}
	finalNotes += fmt.Sprintf("rental_id:%d", rental.ID)

	ok, err := s.appRepo.SetDecision(ctx, applicationID, domain.ApplicationStatusApproved, finalNotes, &approvedAt)
	if err != nil || !ok {
		// Roll back both prior writes, best effort.
		if derr := s.rentalRepo.Delete(ctx, rental.ID); derr != nil {
			logger.Error("compensation failed: orphan rental left behind",
				"rental_id", rental.ID, "property_id", prop.ID, "error", derr)
		}
		if aerr := s.propRepo.MarkAvailable(ctx, prop.ID); aerr != nil {
			logger.Error("compensation failed: property stuck unavailable",
				"property_id", prop.ID, "error", aerr)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("updating application: %w", err)
		}
		return nil, nil, conflictf("application was decided concurrently")
	}

	app.Status = domain.ApplicationStatusApproved
	app.Notes = finalNotes
	app.ApprovedAt = &approvedAt
	s.notifyDecision(ctx, app, prop, true)

	return app, rental, nil
}

func (s *applicationService) notifyDecision(ctx context.Context, app *domain.Application, prop *domain.Property, approved bool) {
	applicant, _ := s.profileRepo.GetByID(ctx, app.ApplicantID)
	if applicant == nil {
		return
	}
	_ = s.emailSvc.SendApplicationDecisionNotification(ctx, applicant.Email, prop.Name, approved, app.Notes)

	title, verb := "Application Rejected", "rejected"
	if approved {
		title, verb = "Application Approved", "approved"
	}
	notif := &domain.Notification{
		UserID:  applicant.ID,
		Title:   title,
		Message: fmt.Sprintf("Your application for %s was %s", prop.Name, verb),
		Attributes: map[string]string{
			"type":           "APPLICATION_" + strings.ToUpper(verb),
			"application_id": fmt.Sprintf("%d", app.ID),
		},
	}
	_ = s.noteRepo.Create(ctx, notif)
}

func (s *applicationService) List(ctx context.Context, actorID string) ([]domain.Application, error) {
	role, err := resolveRole(ctx, s.profileRepo, actorID)
	if err != nil {
		return nil, err
	}
	switch role {
	case domain.RoleAdmin:
		return s.appRepo.ListAll(ctx)
	case domain.RolePropertyManager:
		return s.appRepo.ListByPropertyOwner(ctx, actorID)
	case domain.RoleTenant:
		return s.appRepo.ListByApplicant(ctx, actorID)
	case domain.RoleCaretaker:
		return nil, fmt.Errorf("%w: caretakers have no application access", ErrForbidden)
	}
	return nil, fmt.Errorf("%w: unknown role", ErrForbidden)
}
