package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"rentx/internal/service"
)

const maxWebhookBodyBytes = int64(65536)

type StripeWebhookHandler struct {
	StripeSecret string
	schedules    service.ScheduleService
}

func NewStripeWebhookHandler(stripeSecret string, schedules service.ScheduleService) *StripeWebhookHandler {
	return &StripeWebhookHandler{StripeSecret: stripeSecret, schedules: schedules}
}

// HandleWebhook marks a reservation paid when its checkout session completes.
func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		zap.S().Errorw("error reading webhook body", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.StripeSecret)
	if err != nil {
		zap.S().Warnw("webhook signature verification failed", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil || sess.ID == "" {
			zap.S().Errorw("error parsing checkout.session", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := h.schedules.MarkPaidBySession(r.Context(), sess.ID); err != nil {
			zap.S().Errorw("could not mark reservation paid", "session_id", sess.ID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		zap.S().Infow("reservation paid", "session_id", sess.ID)
	default:
		zap.S().Debugw("unhandled stripe event", "type", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
