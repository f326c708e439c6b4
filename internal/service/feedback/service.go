// Package feedback records page feedback from users.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context, limit, offset int) ([]domain.Feedback, error)
}

const (
	MaxPagePathLength = 500
	MaxMessageLength  = 2000

	defaultPageSize = 50
	maxPageSize     = 200
)

// Service captures and lists feedback.
type Service struct {
	log      *slog.Logger
	feedback feedbackRepo
}

// NewService creates a new feedback service.
func NewService(logger *slog.Logger, feedback feedbackRepo) *Service {
	return &Service{
		log:      logger.With("service", "feedback"),
		feedback: feedback,
	}
}

// CreateFeedbackInput is a single feedback submission.
type CreateFeedbackInput struct {
	PagePath   string
	Message    string
	IsPositive bool
}

// Validate validates the feedback input.
func (i CreateFeedbackInput) Validate() error {
	var errs []domain.FieldError

	path := strings.TrimSpace(i.PagePath)
	switch {
	case path == "":
		errs = append(errs, domain.FieldError{Field: "pagePath", Message: "required"})
	case !strings.HasPrefix(path, "/"):
		errs = append(errs, domain.FieldError{Field: "pagePath", Message: "must start with /"})
	case len(path) > MaxPagePathLength:
		errs = append(errs, domain.FieldError{Field: "pagePath", Message: "too long"})
	}

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if utf8.RuneCountInString(msg) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("max %d characters", MaxMessageLength)})
	}

	return domain.NewValidationErrors(errs)
}

// CreateFeedback appends the caller's feedback.
func (s *Service) CreateFeedback(ctx context.Context, input CreateFeedbackInput) (*domain.Feedback, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.feedback.Create(ctx, &domain.Feedback{
		UserID:     userID,
		PagePath:   strings.TrimSpace(input.PagePath),
		Message:    strings.TrimSpace(input.Message),
		IsPositive: input.IsPositive,
	})
	if err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback created",
		slog.String("user_id", userID.String()),
		slog.String("page_path", saved.PagePath),
		slog.Bool("positive", saved.IsPositive),
	)
	return saved, nil
}

// ListFeedback returns a page of feedback, newest first (admin only).
func (s *Service) ListFeedback(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
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

	items, err := s.feedback.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return items, nil
}
