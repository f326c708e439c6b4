// Package subscription implements the local subscription mirror using
// PostgreSQL. Rows are written only by billing sync paths.
package subscription

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

const table = "subscriptions"

var columns = []string{
	"id", "user_id", "customer_id", "subscription_id", "price_id", "status", "plan_name",
	"current_period_start", "current_period_end", "cancel_at", "created_at", "updated_at",
}

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new subscription repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByUserID returns the mirrored subscription of a user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	return r.getOne(ctx, sq.Eq{"user_id": userID}, userID)
}

// GetByCustomerID returns the subscription mirrored for a processor customer.
func (r *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Subscription, error) {
	return r.getOne(ctx, sq.Eq{"customer_id": customerID}, postgres.Key(customerID))
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key interface{ String() string }) (*domain.Subscription, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("updated_at DESC").
		Limit(1)

	s, err := scanSubscription(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", key)
	}
	return &s, nil
}

// Upsert writes the processor's view of a user's subscription.
func (r *Repo) Upsert(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("user_id", "customer_id", "subscription_id", "price_id", "status", "plan_name",
			"current_period_start", "current_period_end", "cancel_at").
		Values(s.UserID, s.CustomerID, s.SubscriptionID, s.PriceID, string(s.Status), s.PlanName,
			postgres.Timestamptz(s.CurrentPeriodStart), postgres.Timestamptz(s.CurrentPeriodEnd),
			postgres.Timestamptz(s.CancelAt)).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			subscription_id = EXCLUDED.subscription_id,
			price_id = EXCLUDED.price_id,
			status = EXCLUDED.status,
			plan_name = EXCLUDED.plan_name,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			cancel_at = EXCLUDED.cancel_at,
			updated_at = now()
		RETURNING ` + strings.Join(columns, ", "))

	saved, err := scanSubscription(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", s.UserID)
	}
	return &saved, nil
}

func scanSubscription(row pgx.Row) (domain.Subscription, error) {
	var (
		s                      domain.Subscription
		status                 string
		periodStart, periodEnd pgtype.Timestamptz
		cancelAt               pgtype.Timestamptz
	)

	err := row.Scan(
		&s.ID, &s.UserID, &s.CustomerID, &s.SubscriptionID, &s.PriceID, &status, &s.PlanName,
		&periodStart, &periodEnd, &cancelAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Subscription{}, err
	}

	s.Status = domain.SubscriptionStatus(status)
	s.CurrentPeriodStart = postgres.TimePtr(periodStart)
	s.CurrentPeriodEnd = postgres.TimePtr(periodEnd)
	s.CancelAt = postgres.TimePtr(cancelAt)
	return s, nil
}
