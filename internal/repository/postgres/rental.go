package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, property_id, tenant_id, start_date, status, created_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (property_id, tenant_id, start_date, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.PropertyID, rt.TenantID, rt.StartDate, rt.Status, time.Now(), time.Now()).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.PropertyID, &rt.TenantID, &rt.StartDate, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Delete removes a rental row. Used only by the approval compensation path.
func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rentals WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *rentalRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE tenant_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, tenantID)
}

func (r *rentalRepository) ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	query := `SELECT r.id, r.property_id, r.tenant_id, r.start_date, r.status, r.created_at, r.updated_at
	          FROM rentals r JOIN property p ON p.id = r.property_id
	          WHERE p.owner_id = $1 ORDER BY r.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.PropertyID, &rt.TenantID, &rt.StartDate, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
