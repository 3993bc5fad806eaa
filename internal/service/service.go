package service

import (
	"context"

	"rentora-backend/internal/domain"
)

// SubmitApplicationInput carries the tenant-supplied application fields.
type SubmitApplicationInput struct {
	PropertyID   int64
	FirstName    string
	LastName     string
	PhoneNumber  string
	IDNumber     string
	Age          int32
	JobTitle     string
	IncomeCents  int64
	IncomeSource string
	LeaseAgreed  bool
	Documents    []string
	Notes        string
}

type UpdateLeaseInput struct {
	// Action is "acknowledge" for the manager transition; empty for the
	// tenant signing path.
	Action         string
	SignedDocument string
}

type SubmitMaintenanceInput struct {
	PropertyID  int64
	RentalID    int64
	Description string
	Category    string
	Urgency     domain.MaintenanceUrgency
	Photos      []string
}

type UpdateMaintenanceInput struct {
	Status        domain.MaintenanceStatus
	ProgressNotes []string
	Photos        []string
}

type ApplicationService interface {
	Submit(ctx context.Context, applicantID string, input SubmitApplicationInput) (*domain.Application, error)
	Decide(ctx context.Context, actorID string, applicationID int64, status domain.ApplicationStatus, notes string) (*domain.Application, *domain.Rental, error)
	List(ctx context.Context, actorID string) ([]domain.Application, error)
}

type LeaseService interface {
	Create(ctx context.Context, actorID, tenantID string, applicationID int64, leaseDocument string) (*domain.Lease, error)
	Update(ctx context.Context, actorID string, leaseID int64, input UpdateLeaseInput) (*domain.Lease, error)
	List(ctx context.Context, actorID string) ([]domain.LeaseWithApplication, error)
}

type MaintenanceService interface {
	Submit(ctx context.Context, requesterID string, input SubmitMaintenanceInput) (*domain.MaintenanceRequest, error)
	Assign(ctx context.Context, actorID string, requestID int64, caretakerID string) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, actorID string, requestID int64, input UpdateMaintenanceInput) (*domain.MaintenanceRequest, error)
	Reopen(ctx context.Context, actorID string, requestID int64) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, actorID string) ([]domain.MaintenanceRequest, error)
}

type PropertyService interface {
	Create(ctx context.Context, actorID string, property *domain.Property) error
	Get(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, actorID string) ([]domain.Property, error)
}

type RentalService interface {
	List(ctx context.Context, actorID string) ([]domain.Rental, error)
}

type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	AssignRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error)
}

type AnnouncementService interface {
	Post(ctx context.Context, actorID, title, message string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
}

type NotificationService interface {
	List(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID string, notificationID int64) error
}

type EmailService interface {
	SendApplicationReceivedNotification(ctx context.Context, managerEmail, applicantName, propertyName string) error
	SendApplicationDecisionNotification(ctx context.Context, applicantEmail, propertyName string, approved bool, notes string) error
	SendLeaseSentNotification(ctx context.Context, tenantEmail, managerName string) error
	SendLeaseSignedNotification(ctx context.Context, managerEmail, tenantName string) error
	SendMaintenanceAssignmentNotification(ctx context.Context, caretakerEmail, propertyName, description, urgency string) error
	SendMaintenanceEscalationNotification(ctx context.Context, managerEmail, propertyName, description string, pendingDays int) error
}
