package payment_pages

import "net/http"

const successHTML = `<html><body><h1>Payment successful</h1><p>Thank you. You can close this page.</p></body></html>`

const cancelHTML = `<html><body><h1>Payment cancelled</h1><p>Your booking is saved but not paid.</p></body></html>`

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// HandleSuccess GET /payment_success
func (h *Handler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /payment_success - session_id=%s", r.URL.Query().Get("session_id"))
	writeHTML(w, successHTML)
}

// HandleCancel GET /payment_cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /payment_cancel")
	writeHTML(w, cancelHTML)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
