package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// SetRole changes the role of a profile (admin only).
func (s *Service) SetRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'optometrist' or 'admin'")
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID == targetUserID && role != domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	p, err := s.profiles.UpdateRole(ctx, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("profile.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "profile role updated",
		slog.String("user_id", callerID.String()),
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return p, nil
}

// ListProfiles returns a page of all profiles (admin only).
func (s *Service) ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	profiles, err := s.profiles.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("profile.ListProfiles: %w", err)
	}

	return profiles, nil
}
