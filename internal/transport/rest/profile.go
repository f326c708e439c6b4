package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, input profile.UpsertProfileInput) (*domain.Profile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error)
	SetRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (*domain.Profile, error)
}

// ProfileHandler serves the caller's profile and the admin profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfile(p))
}

// Put handles PUT /api/profile.
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpsertProfile(r.Context(), profile.UpsertProfileInput{
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		Phone:                     req.Phone,
		RegistrationNumber:        req.RegistrationNumber,
		IsTherapeuticallyEndorsed: req.IsTherapeuticallyEndorsed,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfile(p))
}

// List handles GET /api/admin/profiles?limit=&offset=.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	profiles, err := h.svc.ListProfiles(r.Context(), limit, offset)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]profileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, toProfile(&profiles[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// SetRole handles PUT /api/admin/profiles/{userId}/role.
func (h *ProfileHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	p, err := h.svc.SetRole(r.Context(), userID, domain.Role(req.Role))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfile(p))
}
