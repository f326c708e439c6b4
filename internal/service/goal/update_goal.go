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

// UpdateGoal applies a partial update, validating the merged goal.
func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
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

	var updated *domain.Goal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.goals.GetByID(txCtx, userID, input.ID)
		if getErr != nil {
			return fmt.Errorf("get goal: %w", getErr)
		}

		merged := mergeGoal(*current, input.Params)
		if err := validateRecord(&merged, endorsed); err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.goals.Update(txCtx, &merged)
		if updateErr != nil {
			return fmt.Errorf("update goal: %w", updateErr)
		}

		if input.Tags != nil {
			tags, tagErr := s.tags.Replace(txCtx, userID, domain.TagTargetGoal, updated.ID, *input.Tags)
			if tagErr != nil {
				return fmt.Errorf("set tags: %w", tagErr)
			}
			updated.Tags = tags
			return nil
		}

		loaded, loadErr := s.tags.Load(txCtx, domain.TagTargetGoal, []uuid.UUID{updated.ID})
		if loadErr != nil {
			return loadErr
		}
		updated.Tags = loaded[updated.ID]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "goal updated",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", input.ID.String()),
	)

	return updated, nil
}

func mergeGoal(g domain.Goal, p domain.GoalUpdateParams) domain.Goal {
	if p.Year != nil {
		g.Year = strings.TrimSpace(*p.Year)
	}
	if p.Title != nil {
		g.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		g.Description = trimOrNil(p.Description)
	}
	g.Categories = g.Categories.Apply(p.Categories)
	switch {
	case p.ClearTargetHours:
		g.TargetHours = nil
	case p.TargetHours != nil:
		target := *p.TargetHours
		g.TargetHours = &target
	}
	return g
}
