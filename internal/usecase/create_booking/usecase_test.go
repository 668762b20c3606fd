package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	catalogRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/catalog"
	"github.com/m04kA/PH-BookingBot/pkg/ptr"
)

// fakeStore эмулирует таблицу bookings: мьютекс даёт изоляцию уровня
// одной операции, fakeTxManager — изоляцию уровня транзакции
type fakeStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64

	createErr error
	countErr  error
}

func (s *fakeStore) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now()
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *fakeStore) CountOverlapping(ctx context.Context, kennelID int64, start, end time.Time) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, b := range s.bookings {
		if b.KennelID == kennelID && b.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}

// fakeTxManager сериализует транзакции глобальным мьютексом: вторая
// транзакция гарантированно видит вставку первой, как при serializable
// изоляции
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeCatalog struct {
	kennels map[int64]*domain.Kennel
	foods   map[int64]*domain.Food
}

func (c *fakeCatalog) GetKennel(ctx context.Context, id int64) (*domain.Kennel, error) {
	k, ok := c.kennels[id]
	if !ok {
		return nil, catalogRepo.ErrKennelNotFound
	}
	return k, nil
}

func (c *fakeCatalog) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	f, ok := c.foods[id]
	if !ok {
		return nil, catalogRepo.ErrFoodNotFound
	}
	return f, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(store *fakeStore) *UseCase {
	catalog := &fakeCatalog{
		kennels: map[int64]*domain.Kennel{
			7: {ID: 7, Code: "K-07", Size: "medium", DailyPrice: 20, IsActive: true},
		},
		foods: map[int64]*domain.Food{
			3: {ID: 3, Name: "Dry mix", UnitPrice: 5},
		},
	}
	return NewUseCase(store, catalog, &fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		PetID:         1,
		KennelID:      7,
		FoodID:        ptr.Ptr(int64(3)),
		StartDate:     day(2025, time.June, 1),
		EndDate:       day(2025, time.June, 3),
		FoodQuantity:  2,
		FeedingPerDay: 3,
		Services:      "grooming and walking",
	}
}

func TestExecute_Success(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 3 days × $20 + 2 × $5 + $5 groom + $2 walk
	assert.Equal(t, 77.00, resp.EstimatedPrice)
	assert.Equal(t, 3, resp.StayDays)
	assert.Equal(t, "K-07", resp.KennelCode)
	require.Len(t, store.bookings, 1)
	assert.Equal(t, 77.00, store.bookings[0].EstimatedPrice)
}

func TestExecute_NoFood(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store)

	req := validRequest()
	req.FoodID = nil
	req.FoodQuantity = 0
	req.Services = "none"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 60.00, resp.EstimatedPrice)
}

func TestExecute_KennelConflict(t *testing.T) {
	store := &fakeStore{}
	store.bookings = append(store.bookings, &domain.Booking{
		ID:        1,
		KennelID:  7,
		StartDate: day(2025, time.June, 3),
		EndDate:   day(2025, time.June, 10),
	})
	store.nextID = 1

	uc := newTestUseCase(store)

	// touching boundary counts as overlap
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrKennelConflict)
	assert.Len(t, store.bookings, 1)
}

func TestExecute_ConcurrentCommits(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store)

	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.PetID = int64(i + 1)
			_, results[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	// ровно одна из конкурирующих попыток проходит
	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrKennelConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, store.bookings, 1)
}

func TestExecute_PersistenceError(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection reset")}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, store.bookings)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeStore{})

	t.Run("EndBeforeStart", func(t *testing.T) {
		req := validRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		req := validRequest()
		req.FoodQuantity = -1
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("MissingPet", func(t *testing.T) {
		req := validRequest()
		req.PetID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_KennelNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeStore{})

	req := validRequest()
	req.KennelID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrKennelNotFound)
}
