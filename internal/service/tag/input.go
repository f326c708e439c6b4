package tag

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// SetTagsInput holds the replacement tag set of an activity or goal.
type SetTagsInput struct {
	TargetID uuid.UUID
	Tags     []domain.TagRef
}

// Validate checks all fields and collects all errors.
func (i SetTagsInput) Validate() error {
	var errs []domain.FieldError
	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(i.Tags) > MaxTagsPerTarget {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTagsPerTarget)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
