package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PH-BookingBot/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("OverlapFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM bookings WHERE kennel_id = \$1 AND start_date <= \$2 AND end_date >= \$3`).
			WithArgs(int64(7), day(2025, time.March, 20), day(2025, time.March, 15)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)))

		count, err := repo.CountOverlapping(context.Background(), 7, day(2025, time.March, 15), day(2025, time.March, 20))
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoOverlap", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM bookings`).
			WithArgs(int64(7), day(2025, time.March, 20), day(2025, time.March, 16)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		count, err := repo.CountOverlapping(context.Background(), 7, day(2025, time.March, 16), day(2025, time.March, 20))
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM bookings`).
			WillReturnError(fmt.Errorf("connection refused"))

		_, err := repo.CountOverlapping(context.Background(), 7, day(2025, time.March, 16), day(2025, time.March, 20))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		foodID := int64(3)

		mock.ExpectQuery(`INSERT INTO bookings`).
			WithArgs(
				int64(1), int64(7), &foodID,
				day(2025, time.March, 10), day(2025, time.March, 15),
				2, 3, "grooming", 140.00,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

		b := &domain.Booking{
			PetID:          1,
			KennelID:       7,
			FoodID:         &foodID,
			StartDate:      day(2025, time.March, 10),
			EndDate:        day(2025, time.March, 15),
			FoodQuantity:   2,
			FeedingPerDay:  3,
			Services:       "grooming",
			EstimatedPrice: 140.00,
		}

		created, err := repo.Create(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnError(fmt.Errorf("constraint violation"))

		_, err := repo.Create(context.Background(), &domain.Booking{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListForExport(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	kennelCode := "K-01"
	foodName := "Dry mix"
	now := time.Now()

	mock.ExpectQuery(`SELECT b.id, o.name AS owner_name, p.name AS pet_name`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_name", "pet_name", "kennel_code", "start_date", "end_date",
			"food_name", "food_quantity", "feeding_frequency_per_day", "services",
			"estimated_price", "created_at",
		}).AddRow(
			int64(1), "Alice", "Rex", &kennelCode,
			day(2025, time.March, 10), day(2025, time.March, 15),
			&foodName, 2, 3, "walking", 130.00, now,
		))

	rows, err := repo.ListForExport(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].OwnerName)
	assert.Equal(t, "Rex", rows[0].PetName)
	assert.Equal(t, "K-01", *rows[0].KennelCode)
	assert.Equal(t, 130.00, rows[0].EstimatedPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}
