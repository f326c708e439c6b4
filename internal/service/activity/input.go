package activity

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// CreateActivityInput holds the parameters for logging an activity.
type CreateActivityInput struct {
	Name        string
	Date        time.Time
	Hours       float64
	Categories  domain.Categories
	Description string
	Reflection  string
	EvidenceURL *string
	Provider    *string
	IsDraft     bool
	Tags        []domain.TagRef
}

// Validate checks all fields and collects all errors. Category rules need
// the user's endorsement and are checked by the service.
func (i CreateActivityInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = validateHours(errs, i.Hours)
	errs = validateText(errs, "description", i.Description, MaxDescriptionLength)
	errs = validateText(errs, "reflection", i.Reflection, MaxReflectionLength)
	if i.Provider != nil {
		errs = validateText(errs, "provider", *i.Provider, MaxProviderLength)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateActivityInput holds a partial update. Nil fields are left unchanged;
// ptr("") clears EvidenceURL and Provider. A non-nil Tags replaces the tag set.
type UpdateActivityInput struct {
	ID          uuid.UUID
	Name        *string
	Date        *time.Time
	Hours       *float64
	Categories  domain.CategoriesPatch
	Description *string
	Reflection  *string
	EvidenceURL *string
	Provider    *string
	IsDraft     *bool
	Tags        *[]domain.TagRef
}

// Validate checks all fields and collects all errors.
func (i UpdateActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Hours != nil {
		errs = validateHours(errs, *i.Hours)
	}
	if i.Description != nil {
		errs = validateText(errs, "description", *i.Description, MaxDescriptionLength)
	}
	if i.Reflection != nil {
		errs = validateText(errs, "reflection", *i.Reflection, MaxReflectionLength)
	}
	if i.Provider != nil {
		errs = validateText(errs, "provider", *i.Provider, MaxProviderLength)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateActivityInput) params() domain.ActivityUpdateParams {
	p := domain.ActivityUpdateParams{
		Date:        i.Date,
		Hours:       i.Hours,
		Categories:  i.Categories,
		EvidenceURL: i.EvidenceURL,
		Provider:    i.Provider,
		IsDraft:     i.IsDraft,
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		p.Description = &d
	}
	if i.Reflection != nil {
		r := strings.TrimSpace(*i.Reflection)
		p.Reflection = &r
	}
	return p
}

// ListActivitiesInput selects activities by calendar year or by an explicit
// date window. Year wins when both are set. Zero values leave a bound open.
type ListActivitiesInput struct {
	Year          int
	From          time.Time
	To            time.Time
	IncludeDrafts bool
}

// Validate checks all fields and collects all errors.
func (i ListActivitiesInput) Validate() error {
	var errs []domain.FieldError
	if i.Year != 0 && (i.Year < 1900 || i.Year > 9999) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be a 4-digit year"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && i.From.After(i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListActivitiesInput) filter() domain.ActivityFilter {
	if i.Year != 0 {
		return domain.ActivityFilter{
			From:          time.Date(i.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:            time.Date(i.Year, time.December, 31, 0, 0, 0, 0, time.UTC),
			IncludeDrafts: i.IncludeDrafts,
		}
	}
	f := domain.ActivityFilter{IncludeDrafts: i.IncludeDrafts}
	if !i.From.IsZero() {
		f.From = domain.DateOnly(i.From)
	}
	if !i.To.IsZero() {
		f.To = domain.DateOnly(i.To)
	}
	return f
}

// allowedEvidenceTypes maps accepted upload content types to file extensions.
var allowedEvidenceTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

// AttachEvidenceInput holds an evidence file upload for an activity.
type AttachEvidenceInput struct {
	ActivityID  uuid.UUID
	ContentType string
	Body        io.Reader
}

// Validate checks all fields and collects all errors.
func (i AttachEvidenceInput) Validate() error {
	var errs []domain.FieldError
	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if _, ok := allowedEvidenceTypes[i.ContentType]; !ok {
		errs = append(errs, domain.FieldError{Field: "file", Message: "must be a PDF, PNG or JPEG"})
	}
	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	return errs
}

func validateHours(errs []domain.FieldError, hours float64) []domain.FieldError {
	if hours <= 0 {
		return append(errs, domain.FieldError{Field: "hours", Message: "must be greater than 0"})
	}
	if hours > MaxHours {
		return append(errs, domain.FieldError{Field: "hours", Message: fmt.Sprintf("max %d hours", MaxHours)})
	}
	return errs
}

func validateText(errs []domain.FieldError, field, value string, limit int) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
	}
	return errs
}
