package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// GetGoal returns one of the user's goals with its tags.
func (s *Service) GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	g, err := s.goals.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}

	one := []domain.Goal{*g}
	if err := s.attachTags(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// ListGoals returns the user's goals, optionally restricted to one year.
func (s *Service) ListGoals(ctx context.Context, year string) ([]domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	year = strings.TrimSpace(year)
	if year != "" && !yearRe.MatchString(year) {
		return nil, domain.NewValidationError("year", "must be a 4-digit year")
	}

	goals, err := s.goals.List(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	if err := s.attachTags(ctx, goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// DeleteGoal permanently removes one of the user's goals.
func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.goals.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal deleted",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", id.String()),
	)
	return nil
}
