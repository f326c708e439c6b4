package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/goal"
)

type goalService interface {
	CreateGoal(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListGoals(ctx context.Context, year string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

// GoalHandler serves the /api/goals endpoints.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goal")}
}

// List handles GET /api/goals?year=YYYY. An empty year lists every goal.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoals(goals))
}

// Create handles POST /api/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), goal.CreateGoalInput{
		Year:        req.Year,
		Title:       req.Title,
		Description: req.Description,
		Categories:  req.Categories,
		TargetHours: req.TargetHours,
		Tags:        tagRefs(req.Tags),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoal(g))
}

// Get handles GET /api/goals/{id}.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	g, err := h.svc.GetGoal(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoal(g))
}

// Update handles PATCH /api/goals/{id}.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req goalPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	input := goal.UpdateGoalInput{
		ID: id,
		Params: domain.GoalUpdateParams{
			Year:             req.Year,
			Title:            req.Title,
			Description:      req.Description,
			Categories:       req.Categories.patch(),
			TargetHours:      req.TargetHours,
			ClearTargetHours: req.ClearTargetHours,
		},
	}
	if req.Tags != nil {
		refs := tagRefs(*req.Tags)
		input.Tags = &refs
	}

	g, err := h.svc.UpdateGoal(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoal(g))
}

// Delete handles DELETE /api/goals/{id}.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
