package admin_page

import (
	"context"

	"github.com/m04kA/PH-BookingBot/internal/domain"
)

// ReportService интерфейс сервиса отчетности
type ReportService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	Kennels(ctx context.Context) ([]*domain.Kennel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
