package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the local mirror of a payment-processor subscription.
// The processor owns the lifecycle; this row is refreshed by webhooks and
// admin syncs and never mutated by business logic.
type Subscription struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CustomerID         string
	SubscriptionID     string
	PriceID            string
	Status             SubscriptionStatus
	PlanName           string
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive reports whether the mirrored status grants paid access.
func (s *Subscription) IsActive() bool {
	return s != nil && s.Status.IsActive()
}

// BillingEvent is a payment processor notification translated into the
// subscription it describes. Subscription is nil for event types that do not
// affect subscriptions. ClientReference carries the user id when the
// processor echoes one back.
type BillingEvent struct {
	ID              string
	Type            string
	ClientReference string
	Subscription    *Subscription
}
