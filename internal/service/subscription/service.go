// Package subscription exposes the locally mirrored billing state and keeps
// it in sync with the payment processor.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

type subscriptionRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	GetByCustomerID(ctx context.Context, customerID string) (*domain.Subscription, error)
	Upsert(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
}

type billingClient interface {
	ParseWebhook(ctx context.Context, payload []byte, signature string) (domain.BillingEvent, error)
	FetchLatest(ctx context.Context, customerID string) (*domain.Subscription, error)
}

// ErrBillingDisabled is returned by sync paths when no processor is configured.
var ErrBillingDisabled = errors.New("billing disabled")

// Service provides subscription read and sync operations.
type Service struct {
	subs    subscriptionRepo
	billing billingClient
	log     *slog.Logger
}

// NewService creates a new Subscription service. billing may be nil, in which
// case only GetSubscription is usable.
func NewService(log *slog.Logger, subs subscriptionRepo, billing billingClient) *Service {
	return &Service{
		subs:    subs,
		billing: billing,
		log:     log.With("service", "subscription"),
	}
}

// GetSubscription returns the caller's mirrored subscription.
func (s *Service) GetSubscription(ctx context.Context) (*domain.Subscription, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}

// HandleWebhook verifies a processor notification and mirrors the
// subscription it carries. Events that carry no subscription or that belong to
// an unknown customer are acknowledged without changes.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.billing == nil {
		return ErrBillingDisabled
	}

	ev, err := s.billing.ParseWebhook(ctx, payload, signature)
	if err != nil {
		return fmt.Errorf("parse webhook: %w", err)
	}
	if ev.Subscription == nil {
		s.log.DebugContext(ctx, "billing event ignored",
			slog.String("event_id", ev.ID),
			slog.String("type", ev.Type),
		)
		return nil
	}

	userID, err := s.resolveUser(ctx, ev)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "billing event for unknown customer",
			slog.String("event_id", ev.ID),
			slog.String("type", ev.Type),
			slog.String("customer_id", ev.Subscription.CustomerID),
		)
		return nil
	}
	if err != nil {
		return err
	}

	sub := *ev.Subscription
	sub.UserID = userID
	saved, err := s.subs.Upsert(ctx, &sub)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}

	s.log.InfoContext(ctx, "subscription mirrored",
		slog.String("user_id", userID.String()),
		slog.String("event_id", ev.ID),
		slog.String("status", saved.Status.String()),
	)
	return nil
}

// resolveUser prefers the user id echoed by the processor and falls back to
// the customer already mirrored locally.
func (s *Service) resolveUser(ctx context.Context, ev domain.BillingEvent) (uuid.UUID, error) {
	if ev.ClientReference != "" {
		if id, err := uuid.Parse(ev.ClientReference); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	if ev.Subscription.CustomerID == "" {
		return uuid.Nil, domain.ErrNotFound
	}

	existing, err := s.subs.GetByCustomerID(ctx, ev.Subscription.CustomerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get subscription by customer: %w", err)
	}
	return existing.UserID, nil
}

// SyncSubscription refreshes a user's mirror from the processor (admin only).
// The user must already have a mirrored customer.
func (s *Service) SyncSubscription(ctx context.Context, targetUserID uuid.UUID) (*domain.Subscription, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if targetUserID == uuid.Nil {
		return nil, domain.NewValidationError("userId", "required")
	}
	if s.billing == nil {
		return nil, ErrBillingDisabled
	}

	current, err := s.subs.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	latest, err := s.billing.FetchLatest(ctx, current.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("fetch subscription: %w", err)
	}
	latest.UserID = targetUserID

	saved, err := s.subs.Upsert(ctx, latest)
	if err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}

	callerID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "subscription synced",
		slog.String("user_id", callerID.String()),
		slog.String("target_user_id", targetUserID.String()),
		slog.String("status", saved.Status.String()),
	)
	return saved, nil
}
