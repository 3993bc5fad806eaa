package repository

import (
	"context"
	"time"

	"rentora-backend/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	// AssignRole sets the role only if it is still unset. Returns false
	// when the row already carried a role.
	AssignRole(ctx context.Context, id string, role domain.Role) (bool, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	ListAvailable(ctx context.Context) ([]domain.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	ListAll(ctx context.Context) ([]domain.Property, error)
	// MarkUnavailable is a conditional write: it only succeeds while the
	// property is still available, so two concurrent approvals cannot both
	// claim the same property. Returns false when the row was already taken.
	MarkUnavailable(ctx context.Context, id int64) (bool, error)
	MarkAvailable(ctx context.Context, id int64) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	// SetDecision moves a pending application to approved or rejected.
	// The update is conditional on status still being pending; false means
	// the application was already decided.
	SetDecision(ctx context.Context, id int64, status domain.ApplicationStatus, notes string, approvedAt *time.Time) (bool, error)
	// ResetToPending undoes a decision during compensation.
	ResetToPending(ctx context.Context, id int64) error
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Application, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Delete(ctx context.Context, id int64) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Rental, error)
	ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
}

type LeaseRepository interface {
	Create(ctx context.Context, lease *domain.Lease) error
	GetByID(ctx context.Context, id int64) (*domain.Lease, error)
	ExistsForApplication(ctx context.Context, applicationID int64) (bool, error)
	Update(ctx context.Context, lease *domain.Lease) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.LeaseWithApplication, error)
	ListByManager(ctx context.Context, managerID string) ([]domain.LeaseWithApplication, error)
	ListAll(ctx context.Context) ([]domain.LeaseWithApplication, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	Assign(ctx context.Context, id int64, caretakerID string) error
	SetStatus(ctx context.Context, id int64, status domain.MaintenanceStatus) error
	// AppendProgress appends notes and photos to the existing logs in SQL
	// so concurrent updates cannot overwrite each other's entries.
	AppendProgress(ctx context.Context, id int64, notes, photos []string) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error)
	ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.MaintenanceRequest, error)
	ListByCaretaker(ctx context.Context, caretakerID string) ([]domain.MaintenanceRequest, error)
	ListAll(ctx context.Context) ([]domain.MaintenanceRequest, error)
	ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.MaintenanceRequest, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, ann *domain.Announcement) error
	List(ctx context.Context) ([]domain.Announcement, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int64, userID string) error
}
