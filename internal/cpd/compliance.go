package cpd

import (
	"math"
	"time"
)

// Status is the tri-state compliance label shown on the dashboard.
type Status string

const (
	StatusOnTrack      Status = "On Track"
	StatusAtRisk       Status = "At Risk"
	StatusNonCompliant Status = "Non-compliant"
)

func (s Status) String() string { return string(s) }

// Thresholds relative to the hours expected by now.
const (
	onTrackRatio = 0.8
	atRiskRatio  = 0.5
)

// Requirements holds the annual required hours.
type Requirements struct {
	Standard float64
	Endorsed float64
}

// DefaultRequirements is 20 hours, 30 for therapeutically endorsed optometrists.
var DefaultRequirements = Requirements{Standard: 20, Endorsed: 30}

// RequiredHours returns the annual requirement for a profile.
func (r Requirements) RequiredHours(endorsed bool) float64 {
	if endorsed {
		return r.Endorsed
	}
	return r.Standard
}

// Compliance is the derived progress against a cycle.
type Compliance struct {
	Status          Status  `json:"status"`
	TotalHours      float64 `json:"totalHours"`
	RequiredHours   float64 `json:"requiredHours"`
	ExpectedByNow   float64 `json:"expectedByNow"`
	RemainingHours  float64 `json:"remainingHours"`
	DaysPassed      int     `json:"daysPassed"`
	TotalDays       int     `json:"totalDays"`
	DaysLeftInCycle int     `json:"daysLeftInCycle"`
	ProgressPercent float64 `json:"progressPercent"`
}

// DeriveCompliance classifies totalHours against the pro-rata expectation
// for the cycle at time now. Rules are evaluated in order:
//
//  1. total >= required             -> On Track
//  2. total >= 0.8 * expectedByNow  -> On Track
//  3. total >= 0.5 * expectedByNow  -> At Risk
//  4. otherwise                     -> Non-compliant
func DeriveCompliance(totalHours, requiredHours float64, now time.Time, cycle Cycle) Compliance {
	totalDays := cycle.TotalDays()
	daysPassed := cycle.DaysPassed(now)

	var expected float64
	if totalDays > 0 {
		expected = float64(daysPassed) / float64(totalDays) * requiredHours
	}

	c := Compliance{
		Status:          classify(totalHours, requiredHours, expected),
		TotalHours:      totalHours,
		RequiredHours:   requiredHours,
		ExpectedByNow:   round2(expected),
		RemainingHours:  math.Max(0, requiredHours-totalHours),
		DaysPassed:      daysPassed,
		TotalDays:       totalDays,
		DaysLeftInCycle: max(0, totalDays-daysPassed),
	}
	if requiredHours > 0 {
		c.ProgressPercent = round2(math.Min(100, totalHours/requiredHours*100))
	}

	return c
}

func classify(total, required, expected float64) Status {
	switch {
	case total >= required:
		return StatusOnTrack
	case total >= onTrackRatio*expected:
		return StatusOnTrack
	case total >= atRiskRatio*expected:
		return StatusAtRisk
	default:
		return StatusNonCompliant
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
