package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is an append-only user comment about a page.
type Feedback struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PagePath   string
	Message    string
	IsPositive bool
	CreatedAt  time.Time
}
