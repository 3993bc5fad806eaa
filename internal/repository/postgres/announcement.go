package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/repository"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (admin_id, title, message, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.AdminID, a.Title, a.Message, time.Now()).Scan(&a.ID)
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	query := `SELECT id, admin_id, title, message, created_at FROM announcements ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.AdminID, &a.Title, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
