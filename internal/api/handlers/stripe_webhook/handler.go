package stripe_webhook

import (
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/m04kA/PH-BookingBot/internal/api/handlers"
)

const maxBodyBytes = 65536

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	webhookSecret string
	logger        Logger
}

func NewHandler(webhookSecret string, logger Logger) *Handler {
	return &Handler{
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Handle POST /stripe_webhook
// Проверяет подпись события Stripe и подтверждает прием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.webhookSecret == "" {
		handlers.RespondBadRequest(w, "webhook not configured")
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Error("POST /stripe_webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, "failed to read request body")
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		h.logger.Warn("POST /stripe_webhook - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, "invalid signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		h.logger.Info("POST /stripe_webhook - Checkout completed: event=%s", event.ID)
	default:
		h.logger.Info("POST /stripe_webhook - Ignored event type %s: event=%s", event.Type, event.ID)
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "received"})
}
