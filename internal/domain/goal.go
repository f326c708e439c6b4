package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a learning objective for a registration year.
type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Year        string
	Title       string
	Description *string
	Categories  Categories
	TargetHours *float64
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GoalUpdateParams is a partial update. ptr("") clears Description;
// ClearTargetHours removes the target.
type GoalUpdateParams struct {
	Year             *string
	Title            *string
	Description      *string
	Categories       CategoriesPatch
	TargetHours      *float64
	ClearTargetHours bool
}

// GoalProgress pairs a goal with the published hours logged in its year.
type GoalProgress struct {
	Goal        Goal
	LoggedHours float64
	Percent     float64 // 0 when the goal has no target
}
