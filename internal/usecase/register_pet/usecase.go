package register_pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	ownerRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/owner"
)

// UseCase use case регистрации питомца
// Владелец создается при первом обращении (upsert по Telegram ID), питомец
// вставляется в той же транзакции
type UseCase struct {
	ownerRepo OwnerRepository
	petRepo   PetRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ownerRepo OwnerRepository,
	petRepo PetRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ownerRepo: ownerRepo,
		petRepo:   petRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case регистрации питомца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TelegramID <= 0 {
		return nil, fmt.Errorf("%w: telegramID must be positive", ErrInvalidInput)
	}
	if req.PetName == "" {
		return nil, fmt.Errorf("%w: pet name is required", ErrInvalidInput)
	}

	uc.logger.Info("RegisterPet: tg_user=%d, pet=%s (%s)", req.TelegramID, req.PetName, req.Species)

	var resp Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		owner, err := uc.ownerRepo.GetByTelegramID(txCtx, req.TelegramID)
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			name := req.OwnerName
			if name == "" {
				name = "Unknown"
			}
			var phone *string
			if req.OwnerPhone != "" {
				phone = &req.OwnerPhone
			}
			owner, err = uc.ownerRepo.Create(txCtx, &domain.Owner{
				TelegramID: req.TelegramID,
				Name:       name,
				Phone:      phone,
			})
		}
		if err != nil {
			uc.logger.Error("RegisterPet: failed to ensure owner tg_user=%d: %v", req.TelegramID, err)
			return fmt.Errorf("%w: failed to ensure owner: %v", ErrInternal, err)
		}

		pet, err := uc.petRepo.Create(txCtx, &domain.Pet{
			OwnerID:          owner.ID,
			Name:             req.PetName,
			Species:          req.Species,
			Breed:            req.Breed,
			Color:            req.Color,
			Age:              req.Age,
			WeightKg:         req.WeightKg,
			LengthCm:         req.LengthCm,
			MicrochipID:      req.MicrochipID,
			VaccinationNotes: req.VaccinationNotes,
			SpecialNeeds:     req.SpecialNeeds,
			PhotoFileID:      req.PhotoFileID,
		})
		if err != nil {
			uc.logger.Error("RegisterPet: failed to create pet for owner=%d: %v", owner.ID, err)
			return fmt.Errorf("%w: failed to create pet: %v", ErrInternal, err)
		}

		resp.OwnerID = owner.ID
		resp.PetID = pet.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterPet: created pet id=%d for owner id=%d", resp.PetID, resp.OwnerID)

	return &resp, nil
}
