package register_pet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	ownerRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/owner"
	"github.com/m04kA/PH-BookingBot/pkg/ptr"
)

type fakeOwnerRepo struct {
	owners map[int64]*domain.Owner
	nextID int64

	createErr error
}

func (r *fakeOwnerRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Owner, error) {
	o, ok := r.owners[telegramID]
	if !ok {
		return nil, ownerRepo.ErrOwnerNotFound
	}
	return o, nil
}

func (r *fakeOwnerRepo) Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	owner.ID = r.nextID
	owner.CreatedAt = time.Now()
	r.owners[owner.TelegramID] = owner
	return owner, nil
}

type fakePetRepo struct {
	pets   []*domain.Pet
	nextID int64

	createErr error
}

func (r *fakePetRepo) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	pet.ID = r.nextID
	r.pets = append(r.pets, pet)
	return pet, nil
}

type passTxManager struct{}

func (passTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		TelegramID:       100500,
		OwnerName:        "Jane Smith",
		OwnerPhone:       "+15550101",
		PetName:          "Barsik",
		Species:          "cat",
		Breed:            "siberian",
		Color:            "gray",
		Age:              ptr.Ptr(4),
		WeightKg:         ptr.Ptr(5.5),
		MicrochipID:      "985112003456789",
		VaccinationNotes: "rabies 2025-01",
		SpecialNeeds:     "none",
	}
}

func TestExecute_NewOwner(t *testing.T) {
	owners := &fakeOwnerRepo{owners: map[int64]*domain.Owner{}}
	pets := &fakePetRepo{}
	uc := NewUseCase(owners, pets, passTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.OwnerID)
	assert.Equal(t, int64(1), resp.PetID)

	owner := owners.owners[100500]
	require.NotNil(t, owner)
	assert.Equal(t, "Jane Smith", owner.Name)
	require.NotNil(t, owner.Phone)
	assert.Equal(t, "+15550101", *owner.Phone)

	require.Len(t, pets.pets, 1)
	assert.Equal(t, owner.ID, pets.pets[0].OwnerID)
	assert.Equal(t, "Barsik", pets.pets[0].Name)
}

func TestExecute_ExistingOwner(t *testing.T) {
	owners := &fakeOwnerRepo{owners: map[int64]*domain.Owner{
		100500: {ID: 42, TelegramID: 100500, Name: "Jane Smith"},
	}, nextID: 42}
	pets := &fakePetRepo{}
	uc := NewUseCase(owners, pets, passTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// повторная регистрация не создает второго владельца
	assert.Equal(t, int64(42), resp.OwnerID)
	assert.Len(t, owners.owners, 1)
	require.Len(t, pets.pets, 1)
	assert.Equal(t, int64(42), pets.pets[0].OwnerID)
}

func TestExecute_PetCreateError(t *testing.T) {
	owners := &fakeOwnerRepo{owners: map[int64]*domain.Owner{}}
	pets := &fakePetRepo{createErr: errors.New("connection reset")}
	uc := NewUseCase(owners, pets, passTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeOwnerRepo{owners: map[int64]*domain.Owner{}}, &fakePetRepo{}, passTxManager{}, nopLogger{})

	t.Run("MissingTelegramID", func(t *testing.T) {
		req := validRequest()
		req.TelegramID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("MissingPetName", func(t *testing.T) {
		req := validRequest()
		req.PetName = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
