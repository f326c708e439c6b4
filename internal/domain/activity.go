package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one logged CPD event.
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Date        time.Time // calendar date, time part is zero
	Hours       float64
	Categories  Categories
	Description string
	Reflection  string
	EvidenceURL *string
	Provider    *string
	IsDraft     bool
	Tags        []Tag // populated on reads, not stored on the row
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasEvidence reports whether an evidence file reference is attached.
func (a *Activity) HasEvidence() bool {
	return a.EvidenceURL != nil && *a.EvidenceURL != ""
}

// ActivityUpdateParams is a partial update. nil fields are left unchanged;
// ptr("") clears EvidenceURL and Provider.
type ActivityUpdateParams struct {
	Name        *string
	Date        *time.Time
	Hours       *float64
	Categories  CategoriesPatch
	Description *string
	Reflection  *string
	EvidenceURL *string
	Provider    *string
	IsDraft     *bool
}

// ActivityFilter restricts which activities a list query returns.
// From and To are inclusive calendar dates; zero values mean unbounded.
type ActivityFilter struct {
	From          time.Time
	To            time.Time
	IncludeDrafts bool
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
