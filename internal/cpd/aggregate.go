// Package cpd computes CPD hour aggregates and compliance status from a
// user's activity records. Everything here is pure: callers load the data
// and pass it in.
package cpd

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// DefaultMinReflectionLength is the reflection length (in characters) an
// activity needs to count as compliant.
const DefaultMinReflectionLength = 50

// Reason explains why an activity is not compliant.
type Reason string

const (
	ReasonMissingReflection Reason = "missing_reflection"
	ReasonNoEvidence        Reason = "no_evidence"
	ReasonWrongCategory     Reason = "wrong_category"
)

// ActivityCompliance is the per-activity compliance verdict.
type ActivityCompliance struct {
	ActivityID uuid.UUID `json:"activityId"`
	Compliant  bool      `json:"compliant"`
	Reasons    []Reason  `json:"reasons,omitempty"`
}

// ReasonCounts counts non-compliance reasons. One activity may increment
// several counters.
type ReasonCounts struct {
	MissingReflection int `json:"missingReflection"`
	NoEvidence        int `json:"noEvidence"`
	WrongCategory     int `json:"wrongCategory"`
}

// Summary is the result of aggregating an activity list.
//
// Category buckets overlap: an activity flagged clinical and therapeutic
// contributes to both. InteractiveTherapeuticHours is a subset of
// TherapeuticHours. Monthly collapses all years into Jan..Dec.
type Summary struct {
	TotalHours                  float64              `json:"totalHours"`
	ClinicalHours               float64              `json:"clinicalHours"`
	NonClinicalHours            float64              `json:"nonClinicalHours"`
	InteractiveHours            float64              `json:"interactiveHours"`
	TherapeuticHours            float64              `json:"therapeuticHours"`
	InteractiveTherapeuticHours float64              `json:"interactiveTherapeuticHours"`
	Monthly                     [12]float64          `json:"monthly"`
	ActivityCount               int                  `json:"activityCount"`
	DraftCount                  int                  `json:"draftCount"`
	CompliantCount              int                  `json:"compliantCount"`
	NonCompliantCount           int                  `json:"nonCompliantCount"`
	Reasons                     ReasonCounts         `json:"reasons"`
	Activities                  []ActivityCompliance `json:"activities"`
}

// MonthHours returns the hours logged in the given calendar month.
func (s Summary) MonthHours(m time.Month) float64 {
	return s.Monthly[m-1]
}

// Aggregator reduces activity lists into a Summary.
type Aggregator struct {
	minReflection int
}

// NewAggregator creates an Aggregator. A non-positive minReflection falls
// back to DefaultMinReflectionLength.
func NewAggregator(minReflection int) Aggregator {
	if minReflection <= 0 {
		minReflection = DefaultMinReflectionLength
	}
	return Aggregator{minReflection: minReflection}
}

// Aggregate computes the summary with the default reflection threshold.
func Aggregate(activities []domain.Activity) Summary {
	return NewAggregator(DefaultMinReflectionLength).Aggregate(activities)
}

// Aggregate scans activities once. Drafts are counted in DraftCount and
// otherwise ignored; the input does not need to be pre-filtered or sorted.
func (a Aggregator) Aggregate(activities []domain.Activity) Summary {
	s := Summary{Activities: make([]ActivityCompliance, 0, len(activities))}

	for i := range activities {
		act := &activities[i]
		if act.IsDraft {
			s.DraftCount++
			continue
		}

		s.ActivityCount++
		h := act.Hours
		c := act.Categories

		s.TotalHours += h
		if c.Clinical {
			s.ClinicalHours += h
		}
		if c.NonClinical {
			s.NonClinicalHours += h
		}
		if c.Interactive {
			s.InteractiveHours += h
		}
		if c.Therapeutic {
			s.TherapeuticHours += h
			if c.Interactive {
				s.InteractiveTherapeuticHours += h
			}
		}
		s.Monthly[act.Date.Month()-1] += h

		verdict := a.check(act)
		if verdict.Compliant {
			s.CompliantCount++
		} else {
			s.NonCompliantCount++
			for _, r := range verdict.Reasons {
				switch r {
				case ReasonMissingReflection:
					s.Reasons.MissingReflection++
				case ReasonNoEvidence:
					s.Reasons.NoEvidence++
				case ReasonWrongCategory:
					s.Reasons.WrongCategory++
				}
			}
		}
		s.Activities = append(s.Activities, verdict)
	}

	return s
}

// Check returns the compliance verdict for a single activity.
func (a Aggregator) Check(act domain.Activity) ActivityCompliance {
	return a.check(&act)
}

func (a Aggregator) check(act *domain.Activity) ActivityCompliance {
	var reasons []Reason

	if utf8.RuneCountInString(act.Reflection) < a.minReflection {
		reasons = append(reasons, ReasonMissingReflection)
	}
	if !act.HasEvidence() {
		reasons = append(reasons, ReasonNoEvidence)
	}
	if !act.Categories.HasClinicalClassification() {
		reasons = append(reasons, ReasonWrongCategory)
	}

	return ActivityCompliance{
		ActivityID: act.ID,
		Compliant:  len(reasons) == 0,
		Reasons:    reasons,
	}
}
