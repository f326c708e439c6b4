package activity

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// AttachEvidence stores an uploaded file and points the activity's
// EvidenceURL at it. The previous object, if any, is left in storage.
func (s *Service) AttachEvidence(ctx context.Context, input AttachEvidenceInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.activities.GetByID(ctx, userID, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	key := evidenceKey(userID, current.ID, input.ContentType)
	url, err := s.evidence.Put(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return nil, fmt.Errorf("store evidence: %w", err)
	}

	var updated *domain.Activity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		latest, getErr := s.activities.GetByID(txCtx, userID, input.ActivityID)
		if getErr != nil {
			return fmt.Errorf("get activity: %w", getErr)
		}
		latest.EvidenceURL = &url

		var updateErr error
		updated, updateErr = s.activities.Update(txCtx, latest)
		if updateErr != nil {
			return fmt.Errorf("update activity: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	one := []domain.Activity{*updated}
	if err := s.attachTags(ctx, one); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "evidence attached",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", updated.ID.String()),
		slog.String("key", key),
	)

	return &one[0], nil
}

// evidenceKey builds the object key: <user>/<activity>/<random><ext>.
func evidenceKey(userID, activityID uuid.UUID, contentType string) string {
	return path.Join(userID.String(), activityID.String(), uuid.NewString()+allowedEvidenceTypes[contentType])
}
