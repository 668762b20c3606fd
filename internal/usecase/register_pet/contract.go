package register_pet

import (
	"context"

	"github.com/m04kA/PH-BookingBot/internal/domain"
)

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Owner, error)
	Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
