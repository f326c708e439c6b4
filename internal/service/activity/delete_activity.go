package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// DeleteActivity permanently removes one of the user's activities.
func (s *Service) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.activities.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity deleted",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", id.String()),
	)
	return nil
}
