package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}

	return p, nil
}

// UpsertProfile creates or updates the authenticated user's profile. New
// profiles get the optometrist role; an existing role is never changed here.
func (s *Service) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.Upsert(ctx, &domain.Profile{
		UserID:                    userID,
		FirstName:                 strings.TrimSpace(input.FirstName),
		LastName:                  strings.TrimSpace(input.LastName),
		Phone:                     trimOrNil(input.Phone),
		RegistrationNumber:        trimOrNil(input.RegistrationNumber),
		Role:                      domain.RoleOptometrist,
		IsTherapeuticallyEndorsed: input.IsTherapeuticallyEndorsed,
	})
	if err != nil {
		return nil, fmt.Errorf("profile.UpsertProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile saved",
		slog.String("user_id", userID.String()),
		slog.Bool("endorsed", p.IsTherapeuticallyEndorsed))

	return p, nil
}

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
