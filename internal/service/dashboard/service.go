// Package dashboard assembles the yearly CPD overview: hour totals,
// compliance status and goal progress.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/config"
	"github.com/cpdtrack/cpd-backend/internal/cpd"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

type activityRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error)
}

type goalRepo interface {
	List(ctx context.Context, userID uuid.UUID, year string) ([]domain.Goal, error)
}

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

const (
	MinYear = 2000
	MaxYear = 2100
)

// Dashboard is the overview of one CPD cycle.
type Dashboard struct {
	Year          int
	Endorsed      bool
	Summary       cpd.Summary
	Compliance    cpd.Compliance
	GoalsProgress []domain.GoalProgress
}

// Service builds dashboards.
type Service struct {
	activities   activityRepo
	goals        goalRepo
	profiles     profileRepo
	requirements cpd.Requirements
	aggregator   cpd.Aggregator
	loc          *time.Location
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new Dashboard service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	goals goalRepo,
	profiles profileRepo,
	cfg config.CPDConfig,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		activities: activities,
		goals:      goals,
		profiles:   profiles,
		requirements: cpd.Requirements{
			Standard: cfg.RequiredHours,
			Endorsed: cfg.EndorsedRequiredHours,
		},
		aggregator: cpd.NewAggregator(cfg.MinReflectionLength),
		loc:        loc,
		now:        time.Now,
		log:        log.With("service", "dashboard"),
	}
}

// GetDashboard returns the overview for year. Zero means the current year in
// the configured timezone.
func (s *Service) GetDashboard(ctx context.Context, year int) (Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Dashboard{}, domain.ErrUnauthorized
	}

	now := s.now().In(s.loc)
	if year == 0 {
		year = now.Year()
	}
	if year < MinYear || year > MaxYear {
		return Dashboard{}, domain.NewValidationError("year", fmt.Sprintf("must be between %d and %d", MinYear, MaxYear))
	}

	endorsed, err := s.isEndorsed(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	cycle := cpd.CycleForYear(year, s.loc)
	activities, err := s.activities.List(ctx, userID, domain.ActivityFilter{
		From:          domain.DateOnly(cycle.Start),
		To:            domain.DateOnly(cycle.End),
		IncludeDrafts: true,
	})
	if err != nil {
		return Dashboard{}, fmt.Errorf("list activities: %w", err)
	}

	goals, err := s.goals.List(ctx, userID, strconv.Itoa(year))
	if err != nil {
		return Dashboard{}, fmt.Errorf("list goals: %w", err)
	}

	summary := s.aggregator.Aggregate(activities)
	required := s.requirements.RequiredHours(endorsed)

	d := Dashboard{
		Year:          year,
		Endorsed:      endorsed,
		Summary:       summary,
		Compliance:    cpd.DeriveCompliance(summary.TotalHours, required, now, cycle),
		GoalsProgress: cpd.GoalsProgress(goals, activities),
	}

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.Int("year", year),
		slog.Float64("total_hours", summary.TotalHours),
		slog.String("status", d.Compliance.Status.String()),
	)

	return d, nil
}

// isEndorsed treats a missing profile as not endorsed.
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
