package domain

// Categories holds the four independent CPD category flags shared by
// activities and goals. The flags are not a partition: one record may
// count towards several buckets at once.
type Categories struct {
	Clinical    bool `json:"clinical"`
	NonClinical bool `json:"nonClinical"`
	Interactive bool `json:"interactive"`
	Therapeutic bool `json:"therapeutic"`
}

// CategoriesPatch is a partial update of Categories. nil = keep current value.
type CategoriesPatch struct {
	Clinical    *bool
	NonClinical *bool
	Interactive *bool
	Therapeutic *bool
}

// Any reports whether at least one flag is set.
func (c Categories) Any() bool {
	return c.Clinical || c.NonClinical || c.Interactive || c.Therapeutic
}

// HasClinicalClassification reports whether the record is classified as
// clinical or non-clinical, which compliance requires.
func (c Categories) HasClinicalClassification() bool {
	return c.Clinical || c.NonClinical
}

// Overlaps reports whether c and o share at least one set flag.
func (c Categories) Overlaps(o Categories) bool {
	return (c.Clinical && o.Clinical) ||
		(c.NonClinical && o.NonClinical) ||
		(c.Interactive && o.Interactive) ||
		(c.Therapeutic && o.Therapeutic)
}

// Apply returns a copy of c with the non-nil patch fields applied.
func (c Categories) Apply(p CategoriesPatch) Categories {
	if p.Clinical != nil {
		c.Clinical = *p.Clinical
	}
	if p.NonClinical != nil {
		c.NonClinical = *p.NonClinical
	}
	if p.Interactive != nil {
		c.Interactive = *p.Interactive
	}
	if p.Therapeutic != nil {
		c.Therapeutic = *p.Therapeutic
	}
	return c
}

// IsEmpty reports whether the patch changes nothing.
func (p CategoriesPatch) IsEmpty() bool {
	return p.Clinical == nil && p.NonClinical == nil && p.Interactive == nil && p.Therapeutic == nil
}

// Validation messages for category rules.
const (
	MsgCategoriesExclusive = "clinical and non-clinical are mutually exclusive"
	MsgTherapeuticClinical = "therapeutic requires clinical"
	MsgTherapeuticEndorsed = "therapeutic requires a therapeutic endorsement"
	MsgCategoryRequired    = "at least one category is required"
)

// Validate checks the cross-field category rules and returns every violation.
//
//   - clinical and non-clinical cannot both be set
//   - therapeutic needs clinical
//   - therapeutic needs an endorsed profile
//   - when requireSelection is true, at least one flag must be set
func (c Categories) Validate(endorsed, requireSelection bool) []FieldError {
	var errs []FieldError

	if c.Clinical && c.NonClinical {
		errs = append(errs, FieldError{Field: "nonClinical", Message: MsgCategoriesExclusive})
	}
	if c.Therapeutic && !c.Clinical {
		errs = append(errs, FieldError{Field: "therapeutic", Message: MsgTherapeuticClinical})
	}
	if c.Therapeutic && !endorsed {
		errs = append(errs, FieldError{Field: "therapeutic", Message: MsgTherapeuticEndorsed})
	}
	if requireSelection && !c.Any() {
		errs = append(errs, FieldError{Field: "categories", Message: MsgCategoryRequired})
	}

	return errs
}
