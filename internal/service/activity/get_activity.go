package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// GetActivity returns one of the user's activities with its tags.
func (s *Service) GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	a, err := s.activities.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	one := []domain.Activity{*a}
	if err := s.attachTags(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// ListActivities returns the user's activities newest first, with tags.
// Drafts are excluded unless requested.
func (s *Service) ListActivities(ctx context.Context, input ListActivitiesInput) ([]domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	activities, err := s.activities.List(ctx, userID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if err := s.attachTags(ctx, activities); err != nil {
		return nil, err
	}
	return activities, nil
}
