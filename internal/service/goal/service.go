// Package goal manages yearly CPD goals.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

type goalRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Goal, error)
	List(ctx context.Context, userID uuid.UUID, year string) ([]domain.Goal, error)
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type tagLinker interface {
	Replace(ctx context.Context, userID uuid.UUID, target domain.TagTarget, targetID uuid.UUID, refs []domain.TagRef) ([]domain.Tag, error)
	Load(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxGoalsPerYear      = 50
)

// Service provides goal management operations.
type Service struct {
	goals    goalRepo
	profiles profileRepo
	tags     tagLinker
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Goal service.
func NewService(
	log *slog.Logger,
	goals goalRepo,
	profiles profileRepo,
	tags tagLinker,
	tx txManager,
) *Service {
	return &Service{
		goals:    goals,
		profiles: profiles,
		tags:     tags,
		tx:       tx,
		log:      log.With("service", "goal"),
	}
}

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

// validateRecord checks a fully merged goal. Goals always need a category.
func validateRecord(g *domain.Goal, endorsed bool) error {
	return domain.NewValidationErrors(g.Categories.Validate(endorsed, true))
}

func (s *Service) attachTags(ctx context.Context, goals []domain.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(goals))
	for i := range goals {
		ids[i] = goals[i].ID
	}
	byID, err := s.tags.Load(ctx, domain.TagTargetGoal, ids)
	if err != nil {
		return err
	}
	for i := range goals {
		goals[i].Tags = byID[goals[i].ID]
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
