package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"

	"github.com/lib/pq"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, owner_id, name, location, price_cents, bedrooms, amenities, images, available, created_at, updated_at`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO property (owner_id, name, location, price_cents, bedrooms, amenities, images, available, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.OwnerID, p.Name, p.Location, p.PriceCents, p.Bedrooms,
		pq.Array(p.Amenities), pq.Array(p.Images), p.Available, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT ` + propertyColumns + ` FROM property WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.PriceCents,
		&p.Bedrooms, pq.Array(&p.Amenities), pq.Array(&p.Images), &p.Available, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE property SET name=$1, location=$2, price_cents=$3, bedrooms=$4, amenities=$5, images=$6, updated_at=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Location, p.PriceCents, p.Bedrooms,
		pq.Array(p.Amenities), pq.Array(p.Images), time.Now(), p.ID)
	return err
}

func (r *propertyRepository) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property WHERE available = TRUE ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *propertyRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.PriceCents, &p.Bedrooms,
			pq.Array(&p.Amenities), pq.Array(&p.Images), &p.Available, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// MarkUnavailable claims the property for a new rental. The WHERE clause
// on available turns the check-then-act of the approval flow into a single
// compare-and-swap; a zero row count means another approval got there first.
func (r *propertyRepository) MarkUnavailable(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE property SET available = FALSE, updated_at = $1 WHERE id = $2 AND available = TRUE`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *propertyRepository) MarkAvailable(ctx context.Context, id int64) error {
	query := `UPDATE property SET available = TRUE, updated_at = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}
