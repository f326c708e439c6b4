package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// CreateActivity logs a new activity for the authenticated user.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
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

	record := &domain.Activity{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Date:        domain.DateOnly(input.Date),
		Hours:       input.Hours,
		Categories:  input.Categories,
		Description: strings.TrimSpace(input.Description),
		Reflection:  strings.TrimSpace(input.Reflection),
		EvidenceURL: trimOrNil(input.EvidenceURL),
		Provider:    trimOrNil(input.Provider),
		IsDraft:     input.IsDraft,
	}
	if err := validateRecord(record, endorsed); err != nil {
		return nil, err
	}

	var created *domain.Activity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.activities.Create(txCtx, record)
		if createErr != nil {
			return fmt.Errorf("create activity: %w", createErr)
		}

		created.Tags = []domain.Tag{}
		if len(input.Tags) == 0 {
			return nil
		}

		tags, tagErr := s.tags.Replace(txCtx, userID, domain.TagTargetActivity, created.ID, input.Tags)
		if tagErr != nil {
			return fmt.Errorf("set tags: %w", tagErr)
		}
		created.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity created",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", created.ID.String()),
		slog.Bool("draft", created.IsDraft),
	)

	return created, nil
}
