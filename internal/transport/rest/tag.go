package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/tag"
)

type tagService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	SetActivityTags(ctx context.Context, input tag.SetTagsInput) ([]domain.Tag, error)
	SetGoalTags(ctx context.Context, input tag.SetTagsInput) ([]domain.Tag, error)
}

// TagHandler serves tag listing and the tag replacement endpoints of
// activities and goals.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTags(tags))
}

// SetActivityTags handles PUT /api/activities/{id}/tags.
func (h *TagHandler) SetActivityTags(w http.ResponseWriter, r *http.Request) {
	h.setTags(w, r, h.svc.SetActivityTags)
}

// SetGoalTags handles PUT /api/goals/{id}/tags.
func (h *TagHandler) SetGoalTags(w http.ResponseWriter, r *http.Request) {
	h.setTags(w, r, h.svc.SetGoalTags)
}

func (h *TagHandler) setTags(
	w http.ResponseWriter,
	r *http.Request,
	set func(context.Context, tag.SetTagsInput) ([]domain.Tag, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req setTagsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	tags, err := set(r.Context(), tag.SetTagsInput{TargetID: id, Tags: tagRefs(req.Tags)})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTags(tags))
}
