// Package activity implements CPD activity logging: CRUD with category
// validation against the user's endorsement, tag assignment and evidence
// uploads.
package activity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

type activityRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type tagLinker interface {
	Replace(ctx context.Context, userID uuid.UUID, target domain.TagTarget, targetID uuid.UUID, refs []domain.TagRef) ([]domain.Tag, error)
	Load(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

type evidenceStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxReflectionLength  = 5000
	MaxProviderLength    = 200
	MaxHours             = 100
)

// Service provides activity management operations.
type Service struct {
	activities activityRepo
	profiles   profileRepo
	tags       tagLinker
	evidence   evidenceStore
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Activity service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	profiles profileRepo,
	tags tagLinker,
	evidence evidenceStore,
	tx txManager,
) *Service {
	return &Service{
		activities: activities,
		profiles:   profiles,
		tags:       tags,
		evidence:   evidence,
		tx:         tx,
		log:        log.With("service", "activity"),
	}
}

// isEndorsed reports the user's therapeutic endorsement. A user without a
// profile is not endorsed.
func (s *Service) isEndorsed(ctx context.Context, userID uuid.UUID) (bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get profile: %w", err)
	}
	return p.IsTherapeuticallyEndorsed, nil
}

// validateRecord checks a fully merged activity before it is written.
func validateRecord(a *domain.Activity, endorsed bool) error {
	errs := a.Categories.Validate(endorsed, !a.IsDraft)
	if a.Hours <= 0 {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must be greater than 0"})
	}
	return domain.NewValidationErrors(errs)
}

func (s *Service) attachTags(ctx context.Context, activities []domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(activities))
	for i := range activities {
		ids[i] = activities[i].ID
	}
	byID, err := s.tags.Load(ctx, domain.TagTargetActivity, ids)
	if err != nil {
		return err
	}
	for i := range activities {
		activities[i].Tags = byID[activities[i].ID]
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
