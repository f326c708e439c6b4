package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cpdtrack/cpd-backend/internal/service/dashboard"
	"github.com/cpdtrack/cpd-backend/internal/service/report"
)

type dashboardService interface {
	GetDashboard(ctx context.Context, year int) (dashboard.Dashboard, error)
}

type reportService interface {
	GetReport(ctx context.Context, year int) (*report.Report, error)
	RenderPDF(ctx context.Context, year int) ([]byte, error)
}

// SummaryHandler serves the dashboard and the yearly report.
type SummaryHandler struct {
	dashboard dashboardService
	reports   reportService
	log       *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(dashboard dashboardService, reports reportService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		dashboard: dashboard,
		reports:   reports,
		log:       logger.With("handler", "summary"),
	}
}

// Dashboard handles GET /api/dashboard?year=YYYY. The year defaults to the
// current one.
func (h *SummaryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", 0)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	d, err := h.dashboard.GetDashboard(r.Context(), year)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboard(&d))
}

// Report handles GET /api/reports/{year}.
func (h *SummaryHandler) Report(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	rep, err := h.reports.GetReport(r.Context(), year)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReport(rep))
}

// ReportPDF handles GET /api/reports/{year}/pdf.
func (h *SummaryHandler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	year, err := pathYear(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	pdf, err := h.reports.RenderPDF(r.Context(), year)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cpd-report-`+strconv.Itoa(year)+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf) //nolint:errcheck
}
