package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/feedback"
)

type feedbackService interface {
	CreateFeedback(ctx context.Context, input feedback.CreateFeedbackInput) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, limit, offset int) ([]domain.Feedback, error)
}

// FeedbackHandler serves feedback capture and the admin listing.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

// Create handles POST /api/feedback.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	f, err := h.svc.CreateFeedback(r.Context(), feedback.CreateFeedbackInput{
		PagePath:   req.PagePath,
		Message:    req.Message,
		IsPositive: req.IsPositive,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFeedback(f))
}

// List handles GET /api/admin/feedback?limit=&offset=.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListFeedback(r.Context(), limit, offset)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]feedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, toFeedback(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
