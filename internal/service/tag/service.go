// Package tag manages user and global tags and their links to activities
// and goals.
package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

type tagRepo interface {
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
	GetVisibleByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error)
	FindOrCreate(ctx context.Context, userID uuid.UUID, text string) (domain.Tag, error)

	// M2M: activity/goal <-> tag
	UnlinkAll(ctx context.Context, target domain.TagTarget, targetID uuid.UUID) error
	Link(ctx context.Context, target domain.TagTarget, targetID uuid.UUID, tagIDs []uuid.UUID) (int, error)
	ListByTargetIDs(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

type activityRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Activity, error)
}

type goalRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Goal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTagsPerTarget = 20
	MaxTagLength     = 50
)

// Service provides tag listing and tag assignment for the authenticated user.
type Service struct {
	tags       tagRepo
	linker     *Linker
	activities activityRepo
	goals      goalRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Tag service.
func NewService(
	log *slog.Logger,
	tags tagRepo,
	activities activityRepo,
	goals goalRepo,
	tx txManager,
) *Service {
	return &Service{
		tags:       tags,
		linker:     NewLinker(tags),
		activities: activities,
		goals:      goals,
		tx:         tx,
		log:        log.With("service", "tag"),
	}
}

// ListTags returns the user's own tags followed by the global ones, ordered by text.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.tags.ListVisible(ctx, userID)
}
