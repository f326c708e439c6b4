// Package feedback implements append-only feedback storage using PostgreSQL.
package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new feedback repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create appends a feedback entry.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	q := postgres.Builder().
		Insert("feedback").
		Columns("user_id", "page_path", "message", "is_positive").
		Values(f.UserID, f.PagePath, f.Message, f.IsPositive).
		Suffix("RETURNING id, user_id, page_path, message, is_positive, created_at")

	saved, err := scanFeedback(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", uuid.Nil)
	}
	return &saved, nil
}

// List returns feedback newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	q := postgres.Builder().
		Select("id", "user_id", "page_path", "message", "is_positive", "created_at").
		From("feedback").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	result := []domain.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return result, nil
}

func scanFeedback(row pgx.Row) (domain.Feedback, error) {
	var f domain.Feedback
	err := row.Scan(&f.ID, &f.UserID, &f.PagePath, &f.Message, &f.IsPositive, &f.CreatedAt)
	return f, err
}
