package postgres

import (
	"database/sql"

	"rentora-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProfileRepository
	repository.PropertyRepository
	repository.ApplicationRepository
	repository.RentalRepository
	repository.LeaseRepository
	repository.MaintenanceRepository
	repository.AnnouncementRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ProfileRepository:      NewProfileRepository(db),
		PropertyRepository:     NewPropertyRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		RentalRepository:       NewRentalRepository(db),
		LeaseRepository:        NewLeaseRepository(db),
		MaintenanceRepository:  NewMaintenanceRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
