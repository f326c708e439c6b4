// Package billing mirrors Stripe subscriptions: it verifies webhook
// signatures, translates events into domain.BillingEvent and fetches the
// current subscription of a customer.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/cpdtrack/cpd-backend/internal/config"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// Stripe event types that change a subscription.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// metadataUserID is the subscription metadata key holding our user id.
const metadataUserID = "user_id"

type subscriptionAPI interface {
	Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	List(params *stripe.SubscriptionListParams) *subscription.Iter
}

// Client talks to Stripe on behalf of the subscription service.
type Client struct {
	subs          subscriptionAPI
	webhookSecret string
	plans         map[string]string
	log           *slog.Logger
}

// New creates a Stripe-backed client from billing config.
func New(cfg config.BillingConfig, logger *slog.Logger) *Client {
	api := client.New(cfg.StripeSecretKey, nil)
	return newClient(api.Subscriptions, cfg, logger)
}

// NewWithBackends creates a client using custom Stripe backends.
func NewWithBackends(cfg config.BillingConfig, backends *stripe.Backends, logger *slog.Logger) *Client {
	api := client.New(cfg.StripeSecretKey, backends)
	return newClient(api.Subscriptions, cfg, logger)
}

func newClient(subs subscriptionAPI, cfg config.BillingConfig, logger *slog.Logger) *Client {
	return &Client{
		subs:          subs,
		webhookSecret: cfg.StripeWebhookSecret,
		plans:         cfg.Plans(),
		log:           logger.With("adapter", "stripe"),
	}
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event.
// A bad signature is reported as a validation error on "signature".
func (c *Client) ParseWebhook(ctx context.Context, payload []byte, signature string) (domain.BillingEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		c.log.WarnContext(ctx, "stripe webhook rejected", slog.String("error", err.Error()))
		return domain.BillingEvent{}, domain.NewValidationError("signature", "invalid webhook signature")
	}

	out := domain.BillingEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return out, fmt.Errorf("decode checkout session: %w", err)
		}
		out.ClientReference = session.ClientReferenceID
		if session.Subscription == nil || session.Subscription.ID == "" {
			return out, nil
		}
		sub, err := c.get(ctx, session.Subscription.ID)
		if err != nil {
			return out, err
		}
		out.Subscription = sub

	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return out, fmt.Errorf("decode subscription: %w", err)
		}
		out.ClientReference = sub.Metadata[metadataUserID]
		out.Subscription = c.snapshot(&sub)
	}

	c.log.DebugContext(ctx, "stripe event parsed",
		slog.String("event_id", out.ID),
		slog.String("type", out.Type),
	)
	return out, nil
}

// FetchLatest returns the customer's most recent subscription in any status.
// Returns domain.ErrNotFound if the customer has none.
func (c *Client) FetchLatest(ctx context.Context, customerID string) (*domain.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	it := c.subs.List(params)
	if it.Next() {
		return c.snapshot(it.Subscription()), nil
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list stripe subscriptions: %w", err)
	}
	return nil, fmt.Errorf("stripe customer %s subscription: %w", customerID, domain.ErrNotFound)
}

func (c *Client) get(ctx context.Context, id string) (*domain.Subscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := c.subs.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("get stripe subscription %s: %w", id, err)
	}
	return c.snapshot(sub), nil
}

// snapshot converts a Stripe subscription into the local mirror. UserID is
// left for the caller to resolve.
func (c *Client) snapshot(s *stripe.Subscription) *domain.Subscription {
	out := &domain.Subscription{
		SubscriptionID:     s.ID,
		Status:             mapStatus(s.Status),
		CurrentPeriodStart: unixPtr(s.CurrentPeriodStart),
		CurrentPeriodEnd:   unixPtr(s.CurrentPeriodEnd),
		CancelAt:           unixPtr(s.CancelAt),
	}
	if s.Customer != nil {
		out.CustomerID = s.Customer.ID
	}
	if s.Items != nil && len(s.Items.Data) > 0 && s.Items.Data[0].Price != nil {
		price := s.Items.Data[0].Price
		out.PriceID = price.ID
		out.PlanName = c.planName(price)
	}
	return out
}

// planName prefers the configured name, then the price nickname, then the id.
func (c *Client) planName(p *stripe.Price) string {
	if name, ok := c.plans[p.ID]; ok && name != "" {
		return name
	}
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.ID
}

// mapStatus maps Stripe statuses without a local equivalent (paused) to
// incomplete, which grants no access.
func mapStatus(s stripe.SubscriptionStatus) domain.SubscriptionStatus {
	status := domain.SubscriptionStatus(s)
	if !status.IsValid() {
		return domain.SubscriptionIncomplete
	}
	return status
}

func unixPtr(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
