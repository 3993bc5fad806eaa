package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, property_id, applicant_id, first_name, last_name, phone_number, id_number, age, job_title, income_cents, income_source, lease_agreed, documents, notes, status, submitted_at, approved_at`

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (property_id, applicant_id, first_name, last_name, phone_number, id_number, age, job_title, income_cents, income_source, lease_agreed, documents, notes, status, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.PropertyID, a.ApplicantID, a.FirstName, a.LastName,
		a.PhoneNumber, a.IDNumber, a.Age, a.JobTitle, a.IncomeCents, a.IncomeSource, a.LeaseAgreed,
		pq.Array(a.Documents), a.Notes, a.Status, a.SubmittedAt).Scan(&a.ID)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	a := &domain.Application{}
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.PropertyID, &a.ApplicantID, &a.FirstName,
		&a.LastName, &a.PhoneNumber, &a.IDNumber, &a.Age, &a.JobTitle, &a.IncomeCents, &a.IncomeSource,
		&a.LeaseAgreed, pq.Array(&a.Documents), &a.Notes, &a.Status, &a.SubmittedAt, &a.ApprovedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SetDecision is conditional on the application still being pending, which
// is what makes re-deciding an already-decided application fail instead of
// silently re-applying side effects.
func (r *applicationRepository) SetDecision(ctx context.Context, id int64, status domain.ApplicationStatus, notes string, approvedAt *time.Time) (bool, error) {
	query := `UPDATE applications SET status=$1, notes=$2, approved_at=$3 WHERE id=$4 AND status='pending'`
	res, err := r.db.ExecContext(ctx, query, status, notes, approvedAt, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *applicationRepository) ResetToPending(ctx context.Context, id int64) error {
	query := `UPDATE applications SET status='pending', approved_at=NULL WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1 ORDER BY submitted_at DESC`
	return r.list(ctx, query, applicantID)
}

func (r *applicationRepository) ListByPropertyOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	query := `SELECT a.id, a.property_id, a.applicant_id, a.first_name, a.last_name, a.phone_number, a.id_number, a.age, a.job_title, a.income_cents, a.income_source, a.lease_agreed, a.documents, a.notes, a.status, a.submitted_at, a.approved_at
	          FROM applications a JOIN property p ON p.id = a.property_id
	          WHERE p.owner_id = $1 ORDER BY a.submitted_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY submitted_at DESC`
	return r.list(ctx, query)
}

func (r *applicationRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE status = 'pending' AND submitted_at < $1 ORDER BY submitted_at ASC`
	return r.list(ctx, query, cutoff)
}

func (r *applicationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.PropertyID, &a.ApplicantID, &a.FirstName, &a.LastName,
			&a.PhoneNumber, &a.IDNumber, &a.Age, &a.JobTitle, &a.IncomeCents, &a.IncomeSource,
			&a.LeaseAgreed, pq.Array(&a.Documents), &a.Notes, &a.Status, &a.SubmittedAt, &a.ApprovedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
