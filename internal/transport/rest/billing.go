package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// maxWebhookBytes matches the payload cap the payment processor documents.
const maxWebhookBytes = 64 << 10

type subscriptionService interface {
	GetSubscription(ctx context.Context) (*domain.Subscription, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	SyncSubscription(ctx context.Context, targetUserID uuid.UUID) (*domain.Subscription, error)
}

// SubscriptionHandler serves the mirrored subscription, the payment webhook
// and the admin resync.
type SubscriptionHandler struct {
	svc subscriptionService
	log *slog.Logger
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(svc subscriptionService, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, log: logger.With("handler", "subscription")}
}

// Get handles GET /api/subscription.
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.GetSubscription(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubscription(sub))
}

// Webhook handles POST /webhooks/stripe. It is public; the signature header
// authenticates the payload.
func (h *SubscriptionHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// Sync handles POST /api/admin/subscriptions/{userId}/sync.
func (h *SubscriptionHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	sub, err := h.svc.SyncSubscription(r.Context(), userID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubscription(sub))
}
