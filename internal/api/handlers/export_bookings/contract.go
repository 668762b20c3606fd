package export_bookings

import (
	"context"
	"io"
)

// ReportService интерфейс сервиса отчетности
type ReportService interface {
	WriteBookingsCSV(ctx context.Context, w io.Writer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
