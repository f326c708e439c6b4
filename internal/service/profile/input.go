package profile

import (
	"strings"
	"unicode/utf8"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// UpsertProfileInput holds the personal fields of the caller's profile.
type UpsertProfileInput struct {
	FirstName                 string
	LastName                  string
	Phone                     *string
	RegistrationNumber        *string
	IsTherapeuticallyEndorsed bool
}

// Validate validates the upsert profile input.
func (i UpsertProfileInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	} else if utf8.RuneCountInString(i.FirstName) > 100 {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}

	if strings.TrimSpace(i.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required"})
	} else if utf8.RuneCountInString(i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}

	if i.Phone != nil && len(*i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	if i.RegistrationNumber != nil && len(*i.RegistrationNumber) > 64 {
		errs = append(errs, domain.FieldError{Field: "registrationNumber", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
