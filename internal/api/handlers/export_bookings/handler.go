package export_bookings

import (
	"bytes"
	"fmt"
	"net/http"
	"time"
)

type Handler struct {
	reports ReportService
	logger  Logger
}

func NewHandler(reports ReportService, logger Logger) *Handler {
	return &Handler{
		reports: reports,
		logger:  logger,
	}
}

// Handle GET /export_bookings
// Выгрузка всех бронирований в CSV-файл
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// сначала собираем выгрузку в буфер: при ошибке посреди записи
	// клиенту не уезжает обрезанный файл
	var buf bytes.Buffer
	if err := h.reports.WriteBookingsCSV(r.Context(), &buf); err != nil {
		h.logger.Error("GET /export_bookings - Export failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("bookings_%s.csv", time.Now().UTC().Format("20060102T150405Z"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())

	h.logger.Info("GET /export_bookings - Exported %d bytes", buf.Len())
}
