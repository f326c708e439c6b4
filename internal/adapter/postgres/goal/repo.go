// Package goal implements the Goal repository using PostgreSQL.
package goal

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

const table = "goals"

var columns = []string{
	"id", "user_id", "year", "title", "description",
	"is_clinical", "is_non_clinical", "is_interactive", "is_therapeutic",
	"target_hours", "created_at", "updated_at",
}

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new goal repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a goal by primary key with user_id filter.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Goal, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	g, err := scanGoal(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	return &g, nil
}

// List returns the user's goals ordered by year then title. An empty year
// returns goals of every year.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, year string) ([]domain.Goal, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("year DESC", "title")
	if year != "" {
		q = q.Where(sq.Eq{"year": year})
	}

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	result := []domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return result, nil
}

// Create inserts a new goal and returns the persisted row.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(
			"user_id", "year", "title", "description",
			"is_clinical", "is_non_clinical", "is_interactive", "is_therapeutic",
			"target_hours",
		).
		Values(
			g.UserID, g.Year, g.Title, postgres.Text(g.Description),
			g.Categories.Clinical, g.Categories.NonClinical, g.Categories.Interactive, g.Categories.Therapeutic,
			postgres.Float8(g.TargetHours),
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanGoal(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "goal", uuid.Nil)
	}
	return &created, nil
}

// Update overwrites every mutable column of an existing goal.
// Returns domain.ErrNotFound if the goal does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"year":            g.Year,
			"title":           g.Title,
			"description":     postgres.Text(g.Description),
			"is_clinical":     g.Categories.Clinical,
			"is_non_clinical": g.Categories.NonClinical,
			"is_interactive":  g.Categories.Interactive,
			"is_therapeutic":  g.Categories.Therapeutic,
			"target_hours":    postgres.Float8(g.TargetHours),
			"updated_at":      sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": g.ID, "user_id": g.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	updated, err := scanGoal(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.ID)
	}
	return &updated, nil
}

// Delete permanently removes a goal. Tag links cascade.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "goal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var (
		g           domain.Goal
		description pgtype.Text
		target      pgtype.Float8
	)

	err := row.Scan(
		&g.ID, &g.UserID, &g.Year, &g.Title, &description,
		&g.Categories.Clinical, &g.Categories.NonClinical, &g.Categories.Interactive, &g.Categories.Therapeutic,
		&target, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return domain.Goal{}, err
	}

	g.Description = postgres.StringPtr(description)
	g.TargetHours = postgres.FloatPtr(target)
	return g, nil
}
