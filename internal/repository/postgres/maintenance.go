package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"

	"github.com/lib/pq"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, property_id, rental_id, tenant_id, caretaker_id, description, category, urgency, status, photos, progress_notes, created_at, updated_at`

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	query := `INSERT INTO maintenance (property_id, rental_id, tenant_id, description, category, urgency, status, photos, progress_notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.PropertyID, m.RentalID, m.TenantID, m.Description,
		m.Category, m.Urgency, m.Status, pq.Array(m.Photos), pq.Array(m.ProgressNotes), time.Now(), time.Now()).Scan(&m.ID)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	m := &domain.MaintenanceRequest{}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.PropertyID, &m.RentalID, &m.TenantID,
		&m.CaretakerID, &m.Description, &m.Category, &m.Urgency, &m.Status,
		pq.Array(&m.Photos), pq.Array(&m.ProgressNotes), &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Assign(ctx context.Context, id int64, caretakerID string) error {
	query := `UPDATE maintenance SET caretaker_id=$1, status='in_progress', updated_at=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, caretakerID, time.Now(), id)
	return err
}

func (r *maintenanceRepository) SetStatus(ctx context.Context, id int64, status domain.MaintenanceStatus) error {
	query := `UPDATE maintenance SET status=$1, updated_at=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

// AppendProgress concatenates onto the arrays in SQL rather than reading
// and rewriting them, so two caretakers appending at once both land.
func (r *maintenanceRepository) AppendProgress(ctx context.Context, id int64, notes, photos []string) error {
	query := `UPDATE maintenance
	          SET progress_notes = array_cat(progress_notes, $1),
	              photos = array_cat(photos, $2),
	              updated_at = $3
	          WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, pq.Array(notes), pq.Array(photos), time.Now(), id)
	return err
}

func (r *maintenanceRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE tenant_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, tenantID)
}

func (r *maintenanceRepository) ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.MaintenanceRequest, error) {
	query := `SELECT m.id, m.property_id, m.rental_id, m.tenant_id, m.caretaker_id, m.description, m.category, m.urgency, m.status, m.photos, m.progress_notes, m.created_at, m.updated_at
	          FROM maintenance m JOIN property p ON p.id = m.property_id
	          WHERE p.owner_id = $1 ORDER BY m.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *maintenanceRepository) ListByCaretaker(ctx context.Context, caretakerID string) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE caretaker_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, caretakerID)
}

func (r *maintenanceRepository) ListAll(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *maintenanceRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE status = 'pending' AND created_at < $1 ORDER BY created_at ASC`
	return r.list(ctx, query, cutoff)
}

func (r *maintenanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.MaintenanceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.MaintenanceRequest
	for rows.Next() {
		var m domain.MaintenanceRequest
		if err := rows.Scan(&m.ID, &m.PropertyID, &m.RentalID, &m.TenantID, &m.CaretakerID,
			&m.Description, &m.Category, &m.Urgency, &m.Status,
			pq.Array(&m.Photos), pq.Array(&m.ProgressNotes), &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}
