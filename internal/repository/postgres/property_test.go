package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentora-backend/internal/domain"
)

func TestPropertyRepository_MarkUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("Claims Available Property", func(t *testing.T) {
		mock.ExpectExec("UPDATE property SET available = FALSE").
			WithArgs(sqlmock.AnyArg(), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := repo.MarkUnavailable(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("Already Claimed", func(t *testing.T) {
		mock.ExpectExec("UPDATE property SET available = FALSE").
			WithArgs(sqlmock.AnyArg(), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := repo.MarkUnavailable(ctx, 5)
		assert.NoError(t, err)
		assert.False(t, claimed)
	})
}

func TestPropertyRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.Property{
			OwnerID:    "mgr-1",
			Name:       "Sunset Villas",
			Location:   "Kilimani",
			PriceCents: 4500000,
			Bedrooms:   2,
			Amenities:  []string{"parking", "borehole"},
			Available:  true,
		}

		mock.ExpectQuery("INSERT INTO property").
			WithArgs(p.OwnerID, p.Name, p.Location, p.PriceCents, p.Bedrooms,
				sqlmock.AnyArg(), sqlmock.AnyArg(), p.Available, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), p.ID)
	})
}

func TestPropertyRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "location", "price_cents", "bedrooms", "amenities", "images", "available", "created_at", "updated_at"}).
			AddRow(5, "mgr-1", "Sunset Villas", "Kilimani", 4500000, 2, "{parking,borehole}", "{}", true, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM property WHERE id").
			WithArgs(int64(5)).
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Sunset Villas", p.Name)
		assert.Equal(t, []string{"parking", "borehole"}, p.Amenities)
		assert.True(t, p.Available)
	})
}
