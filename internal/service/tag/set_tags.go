package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// SetActivityTags replaces the tag set of one of the user's activities.
func (s *Service) SetActivityTags(ctx context.Context, input SetTagsInput) ([]domain.Tag, error) {
	return s.setTags(ctx, domain.TagTargetActivity, input, func(ctx context.Context, userID uuid.UUID) error {
		if _, err := s.activities.GetByID(ctx, userID, input.TargetID); err != nil {
			return fmt.Errorf("get activity: %w", err)
		}
		return nil
	})
}

// SetGoalTags replaces the tag set of one of the user's goals.
func (s *Service) SetGoalTags(ctx context.Context, input SetTagsInput) ([]domain.Tag, error) {
	return s.setTags(ctx, domain.TagTargetGoal, input, func(ctx context.Context, userID uuid.UUID) error {
		if _, err := s.goals.GetByID(ctx, userID, input.TargetID); err != nil {
			return fmt.Errorf("get goal: %w", err)
		}
		return nil
	})
}

func (s *Service) setTags(
	ctx context.Context,
	target domain.TagTarget,
	input SetTagsInput,
	checkOwner func(ctx context.Context, userID uuid.UUID) error,
) ([]domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var tags []domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := checkOwner(txCtx, userID); err != nil {
			return err
		}

		var replaceErr error
		tags, replaceErr = s.linker.Replace(txCtx, userID, target, input.TargetID, input.Tags)
		return replaceErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tags replaced",
		slog.String("user_id", userID.String()),
		slog.String("target", target.String()),
		slog.String("target_id", input.TargetID.String()),
		slog.Int("count", len(tags)),
	)

	return tags, nil
}
