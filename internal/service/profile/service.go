// Package profile manages optometrist profiles and admin role changes.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by profile service.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, limit, offset int) ([]domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.Profile, error)
}

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}
