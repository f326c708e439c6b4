package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Text converts an optional string to a nullable column value.
// Both nil and "" are stored as NULL.
func Text(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// StringPtr converts a nullable column value back to an optional string.
func StringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// Float8 converts an optional float to a nullable column value.
func Float8(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

// FloatPtr converts a nullable float column back to an optional float.
func FloatPtr(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// Timestamptz converts an optional time to a nullable column value.
func Timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// TimePtr converts a nullable timestamp column back to an optional time.
func TimePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
