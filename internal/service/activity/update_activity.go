package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// UpdateActivity applies a partial update. The stored record is merged with
// the input and the result is validated as a whole, so a patch that only
// flips IsDraft to false still has to satisfy the category rules.
func (s *Service) UpdateActivity(ctx context.Context, input UpdateActivityInput) (*domain.Activity, error) {
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

	params := input.params()

	var updated *domain.Activity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.activities.GetByID(txCtx, userID, input.ID)
		if getErr != nil {
			return fmt.Errorf("get activity: %w", getErr)
		}

		merged := mergeActivity(*current, params)
		if err := validateRecord(&merged, endorsed); err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.activities.Update(txCtx, &merged)
		if updateErr != nil {
			return fmt.Errorf("update activity: %w", updateErr)
		}

		if input.Tags != nil {
			tags, tagErr := s.tags.Replace(txCtx, userID, domain.TagTargetActivity, updated.ID, *input.Tags)
			if tagErr != nil {
				return fmt.Errorf("set tags: %w", tagErr)
			}
			updated.Tags = tags
			return nil
		}

		loaded, loadErr := s.tags.Load(txCtx, domain.TagTargetActivity, []uuid.UUID{updated.ID})
		if loadErr != nil {
			return loadErr
		}
		updated.Tags = loaded[updated.ID]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity updated",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", input.ID.String()),
	)

	return updated, nil
}

// mergeActivity applies p onto a copy of a.
func mergeActivity(a domain.Activity, p domain.ActivityUpdateParams) domain.Activity {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Date != nil {
		a.Date = domain.DateOnly(*p.Date)
	}
	if p.Hours != nil {
		a.Hours = *p.Hours
	}
	a.Categories = a.Categories.Apply(p.Categories)
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Reflection != nil {
		a.Reflection = *p.Reflection
	}
	if p.EvidenceURL != nil {
		a.EvidenceURL = trimOrNil(p.EvidenceURL)
	}
	if p.Provider != nil {
		a.Provider = trimOrNil(p.Provider)
	}
	if p.IsDraft != nil {
		a.IsDraft = *p.IsDraft
	}
	return a
}
