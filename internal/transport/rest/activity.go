package rest

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/activity"
)

type activityService interface {
	CreateActivity(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListActivities(ctx context.Context, input activity.ListActivitiesInput) ([]domain.Activity, error)
	UpdateActivity(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	AttachEvidence(ctx context.Context, input activity.AttachEvidenceInput) (*domain.Activity, error)
}

// ActivityHandler serves the /api/activities endpoints.
type ActivityHandler struct {
	svc            activityService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewActivityHandler creates an ActivityHandler. Evidence uploads larger
// than maxUploadBytes are rejected with 413.
func NewActivityHandler(svc activityService, maxUploadBytes int64, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "activity"),
	}
}

// List handles GET /api/activities?year=&from=&to=&includeDrafts=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listActivitiesInput(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListActivities(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivities(list))
}

func listActivitiesInput(r *http.Request) (activity.ListActivitiesInput, error) {
	var (
		in   activity.ListActivitiesInput
		errs []error
		err  error
	)
	if in.Year, err = queryInt(r, "year", 0); err != nil {
		errs = append(errs, err)
	}
	if in.From, err = queryDate(r, "from"); err != nil {
		errs = append(errs, err)
	}
	if in.To, err = queryDate(r, "to"); err != nil {
		errs = append(errs, err)
	}
	if in.IncludeDrafts, err = queryBool(r, "includeDrafts"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return in, mergeValidation(errs)
	}
	return in, nil
}

// Create handles POST /api/activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	a, err := h.svc.CreateActivity(r.Context(), activity.CreateActivityInput{
		Name:        req.Name,
		Date:        parseDate(req.Date),
		Hours:       req.Hours,
		Categories:  req.Categories,
		Description: req.Description,
		Reflection:  req.Reflection,
		EvidenceURL: req.EvidenceURL,
		Provider:    req.Provider,
		IsDraft:     req.IsDraft,
		Tags:        tagRefs(req.Tags),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivity(a))
}

// Get handles GET /api/activities/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	a, err := h.svc.GetActivity(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivity(a))
}

// Update handles PATCH /api/activities/{id}.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req activityPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	input := activity.UpdateActivityInput{
		ID:          id,
		Name:        req.Name,
		Hours:       req.Hours,
		Categories:  req.Categories.patch(),
		Description: req.Description,
		Reflection:  req.Reflection,
		EvidenceURL: req.EvidenceURL,
		Provider:    req.Provider,
		IsDraft:     req.IsDraft,
	}
	if req.Date != nil {
		d := parseDate(*req.Date)
		input.Date = &d
	}
	if req.Tags != nil {
		refs := tagRefs(*req.Tags)
		input.Tags = &refs
	}

	a, err := h.svc.UpdateActivity(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivity(a))
}

// Delete handles DELETE /api/activities/{id}.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteActivity(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadEvidence handles POST /api/activities/{id}/evidence. The body is a
// multipart form with the file in the "file" part.
func (h *ActivityHandler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	mr, err := r.MultipartReader()
	if err != nil {
		respondError(h.log, w, r, domain.NewValidationError("file", "multipart/form-data body required"))
		return
	}

	for {
		part, err := mr.NextPart()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(h.log, w, r, err)
				return
			}
			respondError(h.log, w, r, domain.NewValidationError("file", "required"))
			return
		}
		if part.FormName() != "file" {
			part.Close() //nolint:errcheck
			continue
		}

		a, err := h.svc.AttachEvidence(r.Context(), activity.AttachEvidenceInput{
			ActivityID:  id,
			ContentType: partContentType(part.Header.Get("Content-Type")),
			Body:        part,
		})
		part.Close() //nolint:errcheck
		if err != nil {
			respondError(h.log, w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toActivity(a))
		return
	}
}

// partContentType strips parameters such as charset from a part header.
func partContentType(header string) string {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mediaType
}

func mergeValidation(errs []error) error {
	var fields []domain.FieldError
	for _, err := range errs {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			fields = append(fields, ve.Errors...)
			continue
		}
		return err
	}
	return domain.NewValidationErrors(fields)
}
