package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentora-backend/internal/domain"
)

func TestMaintenanceRepository_AppendProgress(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	t.Run("Appends In SQL", func(t *testing.T) {
		mock.ExpectExec("UPDATE maintenance").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AppendProgress(ctx, 11, []string{"tap replaced"}, []string{"photos/after.jpg"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMaintenanceRepository_Assign(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	t.Run("Sets Caretaker And Status", func(t *testing.T) {
		mock.ExpectExec("UPDATE maintenance SET caretaker_id").
			WithArgs("ct-1", sqlmock.AnyArg(), int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Assign(ctx, 11, "ct-1")
		assert.NoError(t, err)
	})
}

func TestMaintenanceRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	t.Run("Unassigned Request Has Nil Caretaker", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "property_id", "rental_id", "tenant_id", "caretaker_id", "description", "category", "urgency", "status", "photos", "progress_notes", "created_at", "updated_at"}).
			AddRow(11, 5, 3, "tenant-1", nil, "Kitchen tap leaking", "plumbing", "high", "pending", "{}", "{}", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM maintenance WHERE id").
			WithArgs(int64(11)).
			WillReturnRows(rows)

		m, err := repo.GetByID(ctx, 11)
		assert.NoError(t, err)
		assert.Nil(t, m.CaretakerID)
		assert.Equal(t, domain.MaintenanceStatusPending, m.Status)
		assert.Empty(t, m.ProgressNotes)
	})
}

func TestMaintenanceRepository_ListStalePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cutoff := time.Now().AddDate(0, 0, -3)
		rows := sqlmock.NewRows([]string{"id", "property_id", "rental_id", "tenant_id", "caretaker_id", "description", "category", "urgency", "status", "photos", "progress_notes", "created_at", "updated_at"}).
			AddRow(11, 5, 3, "tenant-1", nil, "Kitchen tap leaking", "plumbing", "high", "pending", "{}", "{}", time.Now().AddDate(0, 0, -5), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM maintenance WHERE status = 'pending' AND created_at").
			WithArgs(cutoff).
			WillReturnRows(rows)

		reqs, err := repo.ListStalePending(ctx, cutoff)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
	})
}
