package service

import (
	"context"
	"time"

	"rentora-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) AssignRole(ctx context.Context, id string, role domain.Role) (bool, error) {
	args := m.Called(ctx, id, role)
	return args.Bool(0), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListAll(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) MarkUnavailable(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockPropertyRepo) MarkAvailable(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) SetDecision(ctx context.Context, id int64, status domain.ApplicationStatus, notes string, approvedAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, status, notes, approvedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ResetToPending(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Application), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.Rental, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListAll(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockLeaseRepo
type MockLeaseRepo struct {
	mock.Mock
}

func (m *MockLeaseRepo) Create(ctx context.Context, lease *domain.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}
func (m *MockLeaseRepo) GetByID(ctx context.Context, id int64) (*domain.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}
func (m *MockLeaseRepo) ExistsForApplication(ctx context.Context, applicationID int64) (bool, error) {
	args := m.Called(ctx, applicationID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLeaseRepo) Update(ctx context.Context, lease *domain.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}
func (m *MockLeaseRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.LeaseWithApplication, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.LeaseWithApplication), args.Error(1)
}
func (m *MockLeaseRepo) ListByManager(ctx context.Context, managerID string) ([]domain.LeaseWithApplication, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]domain.LeaseWithApplication), args.Error(1)
}
func (m *MockLeaseRepo) ListAll(ctx context.Context) ([]domain.LeaseWithApplication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LeaseWithApplication), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) Assign(ctx context.Context, id int64, caretakerID string) error {
	args := m.Called(ctx, id, caretakerID)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) SetStatus(ctx context.Context, id int64, status domain.MaintenanceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) AppendProgress(ctx context.Context, id int64, notes, photos []string) error {
	args := m.Called(ctx, id, notes, photos)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListByCaretaker(ctx context.Context, caretakerID string) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, caretakerID)
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListAll(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}

// MockAnnouncementRepo
type MockAnnouncementRepo struct {
	mock.Mock
}

func (m *MockAnnouncementRepo) Create(ctx context.Context, ann *domain.Announcement) error {
	args := m.Called(ctx, ann)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationReceivedNotification(ctx context.Context, managerEmail, applicantName, propertyName string) error {
	args := m.Called(ctx, managerEmail, applicantName, propertyName)
	return args.Error(0)
}
func (m *MockEmailService) SendApplicationDecisionNotification(ctx context.Context, applicantEmail, propertyName string, approved bool, notes string) error {
	args := m.Called(ctx, applicantEmail, propertyName, approved, notes)
	return args.Error(0)
}
func (m *MockEmailService) SendLeaseSentNotification(ctx context.Context, tenantEmail, managerName string) error {
	args := m.Called(ctx, tenantEmail, managerName)
	return args.Error(0)
}
func (m *MockEmailService) SendLeaseSignedNotification(ctx context.Context, managerEmail, tenantName string) error {
	args := m.Called(ctx, managerEmail, tenantName)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceAssignmentNotification(ctx context.Context, caretakerEmail, propertyName, description, urgency string) error {
	args := m.Called(ctx, caretakerEmail, propertyName, description, urgency)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceEscalationNotification(ctx context.Context, managerEmail, propertyName, description string, pendingDays int) error {
	args := m.Called(ctx, managerEmail, propertyName, description, pendingDays)
	return args.Error(0)
}
