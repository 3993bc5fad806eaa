package service

import (
	"context"
	"database/sql"
	"testing"

	"rentora-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLeaseFixture() (*MockLeaseRepo, *MockApplicationRepo, *MockPropertyRepo, *MockProfileRepo, *MockNotificationRepo, *MockEmailService, LeaseService) {
	leaseRepo := new(MockLeaseRepo)
	appRepo := new(MockApplicationRepo)
	propRepo := new(MockPropertyRepo)
	profileRepo := new(MockProfileRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := NewLeaseService(leaseRepo, appRepo, propRepo, profileRepo, noteRepo, emailSvc)
	return leaseRepo, appRepo, propRepo, profileRepo, noteRepo, emailSvc, svc
}

func TestLeaseService_Create(t *testing.T) {
	ctx := context.Background()
	manager := &domain.Profile{ID: "mgr-1", Email: "mgr@test.com", FullName: "Moses Otieno", Role: domain.RolePropertyManager}
	approvedApp := &domain.Application{ID: 7, PropertyID: 5, ApplicantID: "tenant-1", Status: domain.ApplicationStatusApproved}
	prop := &domain.Property{ID: 5, OwnerID: "mgr-1", Name: "Sunset Villas"}

	t.Run("Success", func(t *testing.T) {
		leaseRepo, appRepo, propRepo, profileRepo, noteRepo, emailSvc, svc := newLeaseFixture()

		appRepo.On("GetByID", ctx, int64(7)).Return(approvedApp, nil)
		propRepo.On("GetByID", ctx, int64(5)).Return(prop, nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(manager, nil)
		leaseRepo.On("ExistsForApplication", ctx, int64(7)).Return(false, nil)
		leaseRepo.On("Create", ctx, mock.AnythingOfType("*domain.Lease")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Lease).ID = 9
		}).Return(nil)
		profileRepo.On("GetByID", ctx, "tenant-1").Return(&domain.Profile{ID: "tenant-1", Email: "jane@test.com"}, nil)
		emailSvc.On("SendLeaseSentNotification", ctx, "jane@test.com", "Moses Otieno").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		lease, err := svc.Create(ctx, "mgr-1", "tenant-1", 7, "s3://leases/7.pdf")
		assert.NoError(t, err)
		assert.Equal(t, domain.LeaseStatusSentToTenant, lease.Status)
		assert.Equal(t, "mgr-1", lease.ManagerID)
		assert.Equal(t, int64(9), lease.ID)
	})

	t.Run("Duplicate Lease Conflict", func(t *testing.T) {
		leaseRepo, appRepo, propRepo, profileRepo, _, _, svc := newLeaseFixture()

		appRepo.On("GetByID", ctx, int64(7)).Return(approvedApp, nil)
		propRepo.On("GetByID", ctx, int64(5)).Return(prop, nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(manager, nil)
		leaseRepo.On("ExistsForApplication", ctx, int64(7)).Return(true, nil)

		lease, err := svc.Create(ctx, "mgr-1", "tenant-1", 7, "s3://leases/7.pdf")
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Application Not Approved", func(t *testing.T) {
		_, appRepo, _, _, _, _, svc := newLeaseFixture()

		pending := &domain.Application{ID: 7, PropertyID: 5, ApplicantID: "tenant-1", Status: domain.ApplicationStatusPending}
		appRepo.On("GetByID", ctx, int64(7)).Return(pending, nil)

		lease, err := svc.Create(ctx, "mgr-1", "tenant-1", 7, "s3://leases/7.pdf")
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Wrong Tenant", func(t *testing.T) {
		_, appRepo, _, _, _, _, svc := newLeaseFixture()

		appRepo.On("GetByID", ctx, int64(7)).Return(approvedApp, nil)

		lease, err := svc.Create(ctx, "mgr-1", "tenant-other", 7, "s3://leases/7.pdf")
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Missing Document", func(t *testing.T) {
		_, _, _, _, _, _, svc := newLeaseFixture()

		lease, err := svc.Create(ctx, "mgr-1", "tenant-1", 7, "  ")
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Non Owner Forbidden", func(t *testing.T) {
		_, appRepo, propRepo, profileRepo, _, _, svc := newLeaseFixture()

		otherProp := &domain.Property{ID: 5, OwnerID: "mgr-other", Name: "Sunset Villas"}
		appRepo.On("GetByID", ctx, int64(7)).Return(approvedApp, nil)
		propRepo.On("GetByID", ctx, int64(5)).Return(otherProp, nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(manager, nil)

		lease, err := svc.Create(ctx, "mgr-1", "tenant-1", 7, "s3://leases/7.pdf")
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestLeaseService_Update(t *testing.T) {
	ctx := context.Background()

	sentLease := func() *domain.Lease {
		return &domain.Lease{ID: 9, ManagerID: "mgr-1", TenantID: "tenant-1", ApplicationID: 7, Status: domain.LeaseStatusSentToTenant}
	}
	signedLease := func() *domain.Lease {
		doc := "s3://leases/7-signed.pdf"
		return &domain.Lease{ID: 9, ManagerID: "mgr-1", TenantID: "tenant-1", ApplicationID: 7, SignedDocument: &doc, Status: domain.LeaseStatusSignedByTenant}
	}

	t.Run("Tenant Signs", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, noteRepo, emailSvc, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(sentLease(), nil)
		profileRepo.On("GetByID", ctx, "tenant-1").Return(&domain.Profile{ID: "tenant-1", Email: "jane@test.com", FullName: "Jane Mwangi", Role: domain.RoleTenant}, nil)
		leaseRepo.On("Update", ctx, mock.AnythingOfType("*domain.Lease")).Return(nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(&domain.Profile{ID: "mgr-1", Email: "mgr@test.com", FullName: "Moses Otieno"}, nil)
		emailSvc.On("SendLeaseSignedNotification", ctx, "mgr@test.com", "Jane Mwangi").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		lease, err := svc.Update(ctx, "tenant-1", 9, UpdateLeaseInput{SignedDocument: "s3://leases/7-signed.pdf"})
		assert.NoError(t, err)
		assert.Equal(t, domain.LeaseStatusSignedByTenant, lease.Status)
		assert.NotNil(t, lease.SignedDocument)
	})

	t.Run("Manager Acknowledges", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(signedLease(), nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(&domain.Profile{ID: "mgr-1", Role: domain.RolePropertyManager}, nil)
		leaseRepo.On("Update", ctx, mock.AnythingOfType("*domain.Lease")).Return(nil)

		lease, err := svc.Update(ctx, "mgr-1", 9, UpdateLeaseInput{Action: "acknowledge"})
		assert.NoError(t, err)
		assert.Equal(t, domain.LeaseStatusAcknowledgedByManager, lease.Status)
	})

	t.Run("Acknowledge Before Signature", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(sentLease(), nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(&domain.Profile{ID: "mgr-1", Role: domain.RolePropertyManager}, nil)

		lease, err := svc.Update(ctx, "mgr-1", 9, UpdateLeaseInput{Action: "acknowledge"})
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Sign Twice", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(signedLease(), nil)
		profileRepo.On("GetByID", ctx, "tenant-1").Return(&domain.Profile{ID: "tenant-1", Role: domain.RoleTenant}, nil)

		lease, err := svc.Update(ctx, "tenant-1", 9, UpdateLeaseInput{SignedDocument: "s3://leases/7-signed.pdf"})
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Other Tenant Forbidden", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(sentLease(), nil)
		profileRepo.On("GetByID", ctx, "tenant-other").Return(&domain.Profile{ID: "tenant-other", Role: domain.RoleTenant}, nil)

		lease, err := svc.Update(ctx, "tenant-other", 9, UpdateLeaseInput{SignedDocument: "s3://x.pdf"})
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Other Manager Cannot Acknowledge", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(signedLease(), nil)
		profileRepo.On("GetByID", ctx, "mgr-other").Return(&domain.Profile{ID: "mgr-other", Role: domain.RolePropertyManager}, nil)

		lease, err := svc.Update(ctx, "mgr-other", 9, UpdateLeaseInput{Action: "acknowledge"})
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Unknown Action", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(signedLease(), nil)
		profileRepo.On("GetByID", ctx, "mgr-1").Return(&domain.Profile{ID: "mgr-1", Role: domain.RolePropertyManager}, nil)

		lease, err := svc.Update(ctx, "mgr-1", 9, UpdateLeaseInput{Action: "terminate"})
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Lease Not Found", func(t *testing.T) {
		leaseRepo, _, _, _, _, _, svc := newLeaseFixture()

		leaseRepo.On("GetByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)

		lease, err := svc.Update(ctx, "tenant-1", 9, UpdateLeaseInput{SignedDocument: "s3://x.pdf"})
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLeaseService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Tenant", func(t *testing.T) {
		leaseRepo, _, _, profileRepo, _, _, svc := newLeaseFixture()

		profileRepo.On("GetByID", ctx, "tenant-1").Return(&domain.Profile{ID: "tenant-1", Role: domain.RoleTenant}, nil)
		leaseRepo.On("ListByTenant", ctx, "tenant-1").Return([]domain.LeaseWithApplication{{}}, nil)

		leases, err := svc.List(ctx, "tenant-1")
		assert.NoError(t, err)
		assert.Len(t, leases, 1)
	})

	t.Run("Caretaker Forbidden", func(t *testing.T) {
		_, _, _, profileRepo, _, _, svc := newLeaseFixture()

		profileRepo.On("GetByID", ctx, "ct-1").Return(&domain.Profile{ID: "ct-1", Role: domain.RoleCaretaker}, nil)

		_, err := svc.List(ctx, "ct-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
