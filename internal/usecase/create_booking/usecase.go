package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	catalogRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/catalog"
	"github.com/m04kA/PH-BookingBot/pkg/txmanager"
)

// UseCase use case создания бронирования
//
// Атомарная единица: авторитетная проверка доступности, расчет цены и вставка
// выполняются внутри одной сериализуемой транзакции. Две конкурирующие попытки
// забронировать один питомник на пересекающиеся даты не могут пройти обе:
// либо повторная проверка второй транзакции увидит вставку первой, либо БД
// отклонит второй коммит как конфликт сериализации
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: pet=%d, kennel=%d, dates=%s..%s",
		req.PetID, req.KennelID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var kennelCode string

	// 2. Все операции с БД — в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Авторитетная проверка доступности: закрывает гонку между
		// предварительной проверкой в диалоге и коммитом
		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, req.KennelID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateBooking: kennel=%d already booked for %s..%s (%d overlapping)",
				req.KennelID, req.StartDate.Format(domain.DateFormat),
				req.EndDate.Format(domain.DateFormat), overlapping)
			return ErrKennelConflict
		}

		// 2.2. Тарифы питомника и корма
		kennel, err := uc.catalogRepo.GetKennel(txCtx, req.KennelID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrKennelNotFound) {
				return ErrKennelNotFound
			}
			uc.logger.Error("CreateBooking: failed to get kennel id=%d: %v", req.KennelID, err)
			return fmt.Errorf("%w: failed to get kennel: %v", ErrInternal, err)
		}
		kennelCode = kennel.Code

		var foodUnitPrice float64
		if req.FoodID != nil {
			food, err := uc.catalogRepo.GetFood(txCtx, *req.FoodID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrFoodNotFound) {
					return ErrFoodNotFound
				}
				uc.logger.Error("CreateBooking: failed to get food id=%d: %v", *req.FoodID, err)
				return fmt.Errorf("%w: failed to get food: %v", ErrInternal, err)
			}
			foodUnitPrice = food.UnitPrice
		}

		// 2.3. Расчет стоимости
		price := domain.Price(kennel.DailyPrice, req.StartDate, req.EndDate,
			foodUnitPrice, req.FoodQuantity, req.Services)

		// 2.4. Вставка бронирования
		booking := &domain.Booking{
			PetID:          req.PetID,
			KennelID:       req.KennelID,
			FoodID:         req.FoodID,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			FoodQuantity:   req.FoodQuantity,
			FeedingPerDay:  req.FeedingPerDay,
			Services:       req.Services,
			EstimatedPrice: price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации после повторов означает, что параллельная
		// транзакция уже заняла питомник — для пользователя это тот же конфликт
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization conflict for kennel=%d: %v", req.KennelID, err)
			return nil, ErrKennelConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f",
		result.ID, result.EstimatedPrice)

	return &Response{
		BookingID:      result.ID,
		KennelCode:     kennelCode,
		StartDate:      result.StartDate,
		EndDate:        result.EndDate,
		StayDays:       result.StayDays(),
		EstimatedPrice: result.EstimatedPrice,
		CreatedAt:      result.CreatedAt,
	}, nil
}
