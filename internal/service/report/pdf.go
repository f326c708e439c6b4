package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

const (
	pageWidth  = 190.0 // A4 minus 10mm margins
	lineHeight = 6.0
)

// RenderPDF builds the report for year and returns it as a PDF document.
func (s *Service) RenderPDF(ctx context.Context, year int) ([]byte, error) {
	r, err := s.GetReport(ctx, year)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, r); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePDF renders r onto w.
func WritePDF(w io.Writer, r *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("CPD report %d", r.Year), true)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(pageWidth, 10, tr(fmt.Sprintf("CPD report %d", r.Year)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if p := r.Profile; p != nil {
		line := p.FullName()
		if p.RegistrationNumber != nil {
			line += " · Reg. " + *p.RegistrationNumber
		}
		pdf.CellFormat(pageWidth, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(pageWidth, lineHeight, "Generated "+r.GeneratedAt.Format("2 January 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeTotals(pdf, r)
	writeActivities(pdf, tr, r.Activities)
	if len(r.Goals) > 0 {
		writeGoals(pdf, tr, r.Goals)
	}

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pageWidth, 8, text, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func writeTotals(pdf *fpdf.Fpdf, r *Report) {
	heading(pdf, "Summary")

	c := r.Compliance
	sum := r.Summary
	rows := [][2]string{
		{"Status", c.Status.String()},
		{"Hours logged", hours(sum.TotalHours) + " of " + hours(c.RequiredHours)},
		{"Clinical", hours(sum.ClinicalHours)},
		{"Non-clinical", hours(sum.NonClinicalHours)},
		{"Interactive", hours(sum.InteractiveHours)},
		{"Therapeutic", hours(sum.TherapeuticHours)},
		{"Interactive therapeutic", hours(sum.InteractiveTherapeuticHours)},
		{"Compliant activities", fmt.Sprintf("%d of %d", sum.CompliantCount, sum.ActivityCount)},
	}
	for _, row := range rows {
		pdf.CellFormat(60, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(pageWidth-60, lineHeight, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeActivities(pdf *fpdf.Fpdf, tr func(string) string, acts []domain.Activity) {
	heading(pdf, "Activities")
	if len(acts) == 0 {
		pdf.CellFormat(pageWidth, lineHeight, "No published activities.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	widths := []float64{25, 95, 20, 50}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Date", "Activity", "Hours", "Categories"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, a := range acts {
		cells := []string{
			a.Date.Format("2006-01-02"),
			truncate(tr(a.Name), 60),
			hours(a.Hours),
			categoryLabel(a.Categories),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], lineHeight, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeGoals(pdf *fpdf.Fpdf, tr func(string) string, goals []domain.GoalProgress) {
	heading(pdf, "Goals")
	for _, g := range goals {
		line := fmt.Sprintf("%s: %s h", g.Goal.Title, hours(g.LoggedHours))
		if g.Goal.TargetHours != nil {
			line += fmt.Sprintf(" of %s h (%s%%)", hours(*g.Goal.TargetHours), strconv.FormatFloat(g.Percent, 'f', -1, 64))
		}
		pdf.MultiCell(pageWidth, lineHeight, tr(line), "", "L", false)
	}
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func categoryLabel(c domain.Categories) string {
	var parts []string
	if c.Clinical {
		parts = append(parts, "C")
	}
	if c.NonClinical {
		parts = append(parts, "NC")
	}
	if c.Interactive {
		parts = append(parts, "I")
	}
	if c.Therapeutic {
		parts = append(parts, "T")
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
