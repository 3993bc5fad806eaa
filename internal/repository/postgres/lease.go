package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type leaseRepository struct {
	db *sql.DB
}

func NewLeaseRepository(db *sql.DB) repository.LeaseRepository {
	return &leaseRepository{db: db}
}

func (r *leaseRepository) Create(ctx context.Context, l *domain.Lease) error {
	query := `INSERT INTO leases (manager_id, tenant_id, application_id, lease_document, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.ManagerID, l.TenantID, l.ApplicationID, l.LeaseDocument, l.Status, time.Now(), time.Now()).Scan(&l.ID)
}

func (r *leaseRepository) GetByID(ctx context.Context, id int64) (*domain.Lease, error) {
	l := &domain.Lease{}
	query := `SELECT id, manager_id, tenant_id, application_id, lease_document, signed_document, status, created_at, updated_at FROM leases WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.ManagerID, &l.TenantID, &l.ApplicationID,
		&l.LeaseDocument, &l.SignedDocument, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leaseRepository) ExistsForApplication(ctx context.Context, applicationID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM leases WHERE application_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, applicationID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaseRepository) Update(ctx context.Context, l *domain.Lease) error {
	query := `UPDATE leases SET signed_document=$1, status=$2, updated_at=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, l.SignedDocument, l.Status, time.Now(), l.ID)
	return err
}

const leaseJoinQuery = `SELECT l.id, l.manager_id, l.tenant_id, l.application_id, l.lease_document, l.signed_document, l.status, l.created_at, l.updated_at,
       a.first_name, a.last_name, a.property_id, a.status
FROM leases l JOIN applications a ON a.id = l.application_id`

func (r *leaseRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.LeaseWithApplication, error) {
	return r.list(ctx, leaseJoinQuery+` WHERE l.tenant_id = $1 ORDER BY l.created_at DESC`, tenantID)
}

func (r *leaseRepository) ListByManager(ctx context.Context, managerID string) ([]domain.LeaseWithApplication, error) {
	return r.list(ctx, leaseJoinQuery+` WHERE l.manager_id = $1 ORDER BY l.created_at DESC`, managerID)
}

func (r *leaseRepository) ListAll(ctx context.Context) ([]domain.LeaseWithApplication, error) {
	return r.list(ctx, leaseJoinQuery+` ORDER BY l.created_at DESC`)
}

func (r *leaseRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.LeaseWithApplication, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []domain.LeaseWithApplication
	for rows.Next() {
		var l domain.LeaseWithApplication
		if err := rows.Scan(&l.ID, &l.ManagerID, &l.TenantID, &l.ApplicationID, &l.LeaseDocument,
			&l.SignedDocument, &l.Status, &l.CreatedAt, &l.UpdatedAt,
			&l.ApplicantFirstName, &l.ApplicantLastName, &l.PropertyID, &l.ApplicationStatus); err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}
