// Package activity implements the Activity repository using PostgreSQL.
// Every query is scoped by user_id; rows of other users are reported as
// not found.
package activity

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

const table = "activities"

var columns = []string{
	"id", "user_id", "name", "date", "hours",
	"is_clinical", "is_non_clinical", "is_interactive", "is_therapeutic",
	"description", "reflection", "evidence_url", "provider", "is_draft",
	"created_at", "updated_at",
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an activity by primary key with user_id filter.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Activity, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	a, err := scanActivity(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	return &a, nil
}

// List returns the user's activities matching filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC")

	if !filter.From.IsZero() {
		q = q.Where(sq.GtOrEq{"date": domain.DateOnly(filter.From)})
	}
	if !filter.To.IsZero() {
		q = q.Where(sq.LtOrEq{"date": domain.DateOnly(filter.To)})
	}
	if !filter.IncludeDrafts {
		q = q.Where(sq.Eq{"is_draft": false})
	}

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	result := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(
			"user_id", "name", "date", "hours",
			"is_clinical", "is_non_clinical", "is_interactive", "is_therapeutic",
			"description", "reflection", "evidence_url", "provider", "is_draft",
		).
		Values(
			a.UserID, a.Name, domain.DateOnly(a.Date), a.Hours,
			a.Categories.Clinical, a.Categories.NonClinical, a.Categories.Interactive, a.Categories.Therapeutic,
			a.Description, a.Reflection, postgres.Text(a.EvidenceURL), postgres.Text(a.Provider), a.IsDraft,
		).
		Suffix("RETURNING " + returning())

	created, err := scanActivity(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}
	return &created, nil
}

// Update overwrites every mutable column of an existing activity.
// Returns domain.ErrNotFound if the activity does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":            a.Name,
			"date":            domain.DateOnly(a.Date),
			"hours":           a.Hours,
			"is_clinical":     a.Categories.Clinical,
			"is_non_clinical": a.Categories.NonClinical,
			"is_interactive":  a.Categories.Interactive,
			"is_therapeutic":  a.Categories.Therapeutic,
			"description":     a.Description,
			"reflection":      a.Reflection,
			"evidence_url":    postgres.Text(a.EvidenceURL),
			"provider":        postgres.Text(a.Provider),
			"is_draft":        a.IsDraft,
			"updated_at":      sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": a.ID, "user_id": a.UserID}).
		Suffix("RETURNING " + returning())

	updated, err := scanActivity(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	return &updated, nil
}

// Delete permanently removes an activity. Tag links cascade.
// Returns domain.ErrNotFound if the activity does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "activity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func returning() string { return strings.Join(columns, ", ") }

func scanActivity(row pgx.Row) (domain.Activity, error) {
	var (
		a           domain.Activity
		evidenceURL pgtype.Text
		provider    pgtype.Text
	)

	err := row.Scan(
		&a.ID, &a.UserID, &a.Name, &a.Date, &a.Hours,
		&a.Categories.Clinical, &a.Categories.NonClinical, &a.Categories.Interactive, &a.Categories.Therapeutic,
		&a.Description, &a.Reflection, &evidenceURL, &provider, &a.IsDraft,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Activity{}, err
	}

	a.EvidenceURL = postgres.StringPtr(evidenceURL)
	a.Provider = postgres.StringPtr(provider)
	return a, nil
}
