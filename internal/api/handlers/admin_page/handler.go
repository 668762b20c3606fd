package admin_page

import (
	"fmt"
	"html"
	"net/http"
	"strings"
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

// Handle GET /
// Сводная страница админки: статистика, список вольеров, ссылка на выгрузку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.reports.Stats(ctx)
	if err != nil {
		h.logger.Error("GET / - Failed to build stats: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	kennels, err := h.reports.Kennels(ctx)
	if err != nil {
		h.logger.Error("GET / - Failed to list kennels: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var sb strings.Builder
	sb.WriteString("<html><head><title>PetHotel Admin</title></head><body>\n")
	sb.WriteString("<h1>PetHotel - Admin</h1>\n")
	sb.WriteString(fmt.Sprintf("<p>Total pets: %d</p>\n", stats.TotalPets))
	sb.WriteString(fmt.Sprintf("<p>Total bookings: %d</p>\n", stats.TotalBookings))
	sb.WriteString(fmt.Sprintf("<p>Estimated revenue: $%.2f</p>\n", stats.Revenue))
	sb.WriteString("<h2>Kennels</h2>\n<ul>\n")
	for _, k := range kennels {
		state := "inactive"
		if k.IsActive {
			state = "active"
		}
		sb.WriteString(fmt.Sprintf("<li>%s (%s) - $%.2f - %s</li>\n",
			html.EscapeString(k.Code), html.EscapeString(k.Size), k.DailyPrice, state))
	}
	sb.WriteString("</ul>\n")

	token := r.URL.Query().Get("token")
	sb.WriteString(fmt.Sprintf("<p><a href='/export_bookings?token=%s'>Download bookings CSV</a></p>\n",
		html.EscapeString(token)))
	sb.WriteString("</body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sb.String()))

	h.logger.Info("GET / - Admin page rendered")
}
