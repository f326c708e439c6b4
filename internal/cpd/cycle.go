package cpd

import (
	"time"
)

// Cycle is the date window hours are measured against.
type Cycle struct {
	Start time.Time
	End   time.Time
}

// CycleForYear returns the annual cycle of the given year: January 1 to
// December 31, both at midnight in loc.
func CycleForYear(year int, loc *time.Location) Cycle {
	if loc == nil {
		loc = time.UTC
	}
	return Cycle{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
	}
}

// Year returns the calendar year the cycle starts in.
func (c Cycle) Year() int { return c.Start.Year() }

// Contains reports whether d falls inside the cycle, comparing calendar
// dates only.
func (c Cycle) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, c.Start.Location())
	return !day.Before(c.Start) && !day.After(c.End)
}

// TotalDays is ceil((end - start) / 24h).
func (c Cycle) TotalDays() int {
	return ceilDays(c.End.Sub(c.Start))
}

// DaysPassed is ceil((now - start) / 24h) clamped to [0, TotalDays].
func (c Cycle) DaysPassed(now time.Time) int {
	d := ceilDays(now.Sub(c.Start))
	if d < 0 {
		return 0
	}
	if total := c.TotalDays(); d > total {
		return total
	}
	return d
}

func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	n := int(d / day)
	if d%day > 0 {
		n++
	}
	return n
}
