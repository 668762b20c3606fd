package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	"github.com/m04kA/PH-BookingBot/pkg/ptr"
)

type fakeBookings struct {
	count   int64
	revenue float64
	rows    []*domain.BookingExportRow

	err error
}

func (f *fakeBookings) Count(ctx context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeBookings) RevenueSum(ctx context.Context) (float64, error) {
	return f.revenue, f.err
}

func (f *fakeBookings) ListForExport(ctx context.Context) ([]*domain.BookingExportRow, error) {
	return f.rows, f.err
}

type fakePets struct {
	count int64
	err   error
}

func (f *fakePets) Count(ctx context.Context) (int64, error) {
	return f.count, f.err
}

type fakeOwners struct {
	rows []*domain.ClientRow
	err  error
}

func (f *fakeOwners) ListWithPets(ctx context.Context) ([]*domain.ClientRow, error) {
	return f.rows, f.err
}

type fakeCatalog struct {
	kennels []*domain.Kennel
	err     error
}

func (f *fakeCatalog) ListKennels(ctx context.Context) ([]*domain.Kennel, error) {
	return f.kennels, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestStats(t *testing.T) {
	svc := NewService(
		&fakeBookings{count: 12, revenue: 345.678},
		&fakePets{count: 7},
		&fakeOwners{},
		&fakeCatalog{},
		nopLogger{},
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TotalPets)
	assert.Equal(t, int64(12), stats.TotalBookings)
	assert.Equal(t, 345.68, stats.Revenue)
}

func TestStats_RepoError(t *testing.T) {
	svc := NewService(
		&fakeBookings{},
		&fakePets{err: errors.New("connection reset")},
		&fakeOwners{},
		&fakeCatalog{},
		nopLogger{},
	)

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestWriteBookingsCSV(t *testing.T) {
	created := time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)
	svc := NewService(
		&fakeBookings{rows: []*domain.BookingExportRow{
			{
				BookingID:      1,
				OwnerName:      "Jane Smith",
				PetName:        "Barsik",
				KennelCode:     ptr.Ptr("K-07"),
				StartDate:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				EndDate:        time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
				FoodName:       ptr.Ptr("Dry mix"),
				FoodQuantity:   2,
				FeedingPerDay:  3,
				Services:       "grooming",
				EstimatedPrice: 77,
				CreatedAt:      created,
			},
			{
				BookingID:      2,
				OwnerName:      "Bob Lee",
				PetName:        "Rex",
				StartDate:      time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
				EndDate:        time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
				Services:       "none",
				EstimatedPrice: 100,
				CreatedAt:      created,
			},
		}},
		&fakePets{},
		&fakeOwners{},
		&fakeCatalog{},
		nopLogger{},
	)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteBookingsCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"1", "Jane Smith", "Barsik", "K-07", "2025-06-01", "2025-06-03",
		"Dry mix", "2", "3", "grooming", "77.00", "2025-06-01 10:30:00",
	}, records[1])

	// удаленный вольер и отсутствие корма выгружаются пустыми колонками
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "", records[2][6])
}

func TestClients(t *testing.T) {
	svc := NewService(
		&fakeBookings{},
		&fakePets{},
		&fakeOwners{rows: []*domain.ClientRow{
			{OwnerID: 1, Name: "Jane Smith", PetID: ptr.Ptr(int64(5)), PetName: ptr.Ptr("Barsik")},
			{OwnerID: 2, Name: "Bob Lee"},
		}},
		&fakeCatalog{},
		nopLogger{},
	)

	rows, err := svc.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[1].PetID)
}
