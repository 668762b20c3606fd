package reports

import (
	"context"

	"github.com/m04kA/PH-BookingBot/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Count(ctx context.Context) (int64, error)
	RevenueSum(ctx context.Context) (float64, error)
	ListForExport(ctx context.Context) ([]*domain.BookingExportRow, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	Count(ctx context.Context) (int64, error)
}

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	ListWithPets(ctx context.Context) ([]*domain.ClientRow, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListKennels(ctx context.Context) ([]*domain.Kennel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
