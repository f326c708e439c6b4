package goal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

var yearRe = regexp.MustCompile(`^\d{4}$`)

// CreateGoalInput holds the parameters for creating a goal.
type CreateGoalInput struct {
	Year        string
	Title       string
	Description *string
	Categories  domain.Categories
	TargetHours *float64
	Tags        []domain.TagRef
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	if !yearRe.MatchString(strings.TrimSpace(i.Year)) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be a 4-digit year"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	if i.TargetHours != nil && *i.TargetHours <= 0 {
		errs = append(errs, domain.FieldError{Field: "targetHours", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGoalInput holds a partial update. Nil fields are left unchanged;
// ptr("") clears Description and ClearTargetHours removes the target.
type UpdateGoalInput struct {
	ID     uuid.UUID
	Params domain.GoalUpdateParams
	Tags   *[]domain.TagRef
}

// Validate checks all fields and collects all errors.
func (i UpdateGoalInput) Validate() error {
	var errs []domain.FieldError
	p := i.Params

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if p.Year != nil && !yearRe.MatchString(strings.TrimSpace(*p.Year)) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be a 4-digit year"})
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if utf8.RuneCountInString(title) > MaxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
		}
	}
	if p.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*p.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	if p.TargetHours != nil && p.ClearTargetHours {
		errs = append(errs, domain.FieldError{Field: "targetHours", Message: "cannot set and clear at once"})
	}
	if p.TargetHours != nil && *p.TargetHours <= 0 {
		errs = append(errs, domain.FieldError{Field: "targetHours", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
