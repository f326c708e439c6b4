package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// CreateGoal creates a goal for the authenticated user.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	endorsed, err := s.isEndorsed(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := &domain.Goal{
		UserID:      userID,
		Year:        strings.TrimSpace(input.Year),
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Categories:  input.Categories,
		TargetHours: input.TargetHours,
	}
	if err := validateRecord(record, endorsed); err != nil {
		return nil, err
	}

	existing, err := s.goals.List(ctx, userID, record.Year)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	if len(existing) >= MaxGoalsPerYear {
		return nil, domain.NewValidationError("goals", fmt.Sprintf("limit reached (max %d per year)", MaxGoalsPerYear))
	}

	var created *domain.Goal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.goals.Create(txCtx, record)
		if createErr != nil {
			return fmt.Errorf("create goal: %w", createErr)
		}

		created.Tags = []domain.Tag{}
		if len(input.Tags) == 0 {
			return nil
		}
		tags, tagErr := s.tags.Replace(txCtx, userID, domain.TagTargetGoal, created.ID, input.Tags)
		if tagErr != nil {
			return fmt.Errorf("set tags: %w", tagErr)
		}
		created.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", created.ID.String()),
		slog.String("year", created.Year),
	)

	return created, nil
}
