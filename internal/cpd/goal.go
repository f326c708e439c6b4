package cpd

import (
	"math"
	"strconv"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// GoalProgress sums the published hours that count towards g: activities
// dated in the goal's year whose categories overlap the goal's categories.
// Percent is capped at 100 and stays 0 for goals without a target.
func GoalProgress(g domain.Goal, activities []domain.Activity) domain.GoalProgress {
	year, err := strconv.Atoi(g.Year)
	if err != nil {
		return domain.GoalProgress{Goal: g}
	}

	var logged float64
	for i := range activities {
		a := &activities[i]
		if a.IsDraft || a.Date.Year() != year {
			continue
		}
		if a.Categories.Overlaps(g.Categories) {
			logged += a.Hours
		}
	}

	p := domain.GoalProgress{Goal: g, LoggedHours: logged}
	if g.TargetHours != nil && *g.TargetHours > 0 {
		p.Percent = round2(math.Min(100, logged / *g.TargetHours * 100))
	}
	return p
}

// GoalsProgress applies GoalProgress to every goal, keeping order.
func GoalsProgress(goals []domain.Goal, activities []domain.Activity) []domain.GoalProgress {
	out := make([]domain.GoalProgress, len(goals))
	for i := range goals {
		out[i] = GoalProgress(goals[i], activities)
	}
	return out
}
