package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, email, full_name, role, created_at, updated_at FROM profiles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, full_name, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Email, p.FullName, p.Role, time.Now(), time.Now())
	return err
}

func (r *profileRepository) AssignRole(ctx context.Context, id string, role domain.Role) (bool, error) {
	// Conditional on the role still being unset: the role is assigned at
	// most once for the lifetime of the profile.
	query := `UPDATE profiles SET role=$1, updated_at=$2 WHERE id=$3 AND (role IS NULL OR role = '')`
	res, err := r.db.ExecContext(ctx, query, role, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
