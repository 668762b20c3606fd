package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PH-BookingBot/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, kennelID int64, start, end time.Time) (int, error)
}

// CatalogRepository интерфейс репозитория справочных данных
type CatalogRepository interface {
	GetKennel(ctx context.Context, id int64) (*domain.Kennel, error)
	GetFood(ctx context.Context, id int64) (*domain.Food, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
