package bot

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	"github.com/m04kA/PH-BookingBot/internal/usecase/create_booking"
	"github.com/m04kA/PH-BookingBot/internal/usecase/register_pet"
)

// BookingCreator интерфейс use case оформления бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// PetRegistrar интерфейс use case регистрации питомца
type PetRegistrar interface {
	Execute(ctx context.Context, req *register_pet.Request) (*register_pet.Response, error)
}

// BookingRepository интерфейс репозитория бронирований
// Используется только для предварительной проверки доступности, финальная
// проверка всегда выполняется внутри транзакции оформления
type BookingRepository interface {
	CountOverlapping(ctx context.Context, kennelID int64, start, end time.Time) (int, error)
}

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Owner, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListActiveKennels(ctx context.Context) ([]*domain.Kennel, error)
	ListFoods(ctx context.Context) ([]*domain.Food, error)
}

// PaymentClient интерфейс платежного клиента
type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, description string) (string, error)
}

// ReportService интерфейс сервиса отчетности
type ReportService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	Clients(ctx context.Context) ([]*domain.ClientRow, error)
	WriteBookingsCSV(ctx context.Context, w io.Writer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
