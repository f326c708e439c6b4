// Package report builds the annual CPD report and renders it as PDF.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
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

// Report is the annual summary of one user's published CPD.
type Report struct {
	Year        int
	Profile     *domain.Profile // nil when the user has no profile
	Summary     cpd.Summary
	Compliance  cpd.Compliance
	Activities  []domain.Activity // published only, oldest first
	Goals       []domain.GoalProgress
	GeneratedAt time.Time
}

// Endorsed reports whether the report uses the endorsed requirement.
func (r *Report) Endorsed() bool {
	return r.Profile != nil && r.Profile.IsTherapeuticallyEndorsed
}

// Service builds reports.
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

// NewService creates a new Report service.
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
		log:        log.With("service", "report"),
	}
}

// GetReport summarizes the caller's published activities for year.
func (s *Service) GetReport(ctx context.Context, year int) (*Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if year < MinYear || year > MaxYear {
		return nil, domain.NewValidationError("year", fmt.Sprintf("must be between %d and %d", MinYear, MaxYear))
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	cycle := cpd.CycleForYear(year, s.loc)
	activities, err := s.activities.List(ctx, userID, domain.ActivityFilter{
		From: domain.DateOnly(cycle.Start),
		To:   domain.DateOnly(cycle.End),
	})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	goals, err := s.goals.List(ctx, userID, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	published := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if !a.IsDraft {
			published = append(published, a)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Date.Before(published[j].Date)
	})

	now := s.now().In(s.loc)
	r := &Report{
		Year:        year,
		Profile:     profile,
		Summary:     s.aggregator.Aggregate(published),
		Activities:  published,
		Goals:       cpd.GoalsProgress(goals, published),
		GeneratedAt: now,
	}
	r.Compliance = cpd.DeriveCompliance(r.Summary.TotalHours, s.requirements.RequiredHours(r.Endorsed()), now, cycle)

	s.log.InfoContext(ctx, "report built",
		slog.String("user_id", userID.String()),
		slog.Int("year", year),
		slog.Int("activities", len(published)),
	)

	return r, nil
}
