package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates an optometrist profile for a fresh user id.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, endorsed bool) domain.Profile {
	t.Helper()

	p := domain.Profile{
		UserID:                    uuid.New(),
		FirstName:                 "Test",
		LastName:                  "User " + uniqueSuffix(),
		Role:                      domain.RoleOptometrist,
		IsTherapeuticallyEndorsed: endorsed,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO profiles (user_id, first_name, last_name, role, is_therapeutically_endorsed)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.UserID, p.FirstName, p.LastName, string(p.Role), p.IsTherapeuticallyEndorsed,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedActivity inserts a published clinical activity on date for userID.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date time.Time, hours float64) domain.Activity {
	t.Helper()

	a := domain.Activity{
		UserID:     userID,
		Name:       "Seeded activity " + uniqueSuffix(),
		Date:       domain.DateOnly(date),
		Hours:      hours,
		Categories: domain.Categories{Clinical: true},
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO activities (user_id, name, date, hours, is_clinical)
		 VALUES ($1, $2, $3, $4, true)
		 RETURNING id, created_at, updated_at`,
		a.UserID, a.Name, a.Date, a.Hours,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}

	return a
}

// SeedGlobalTag inserts a tag visible to every user.
func SeedGlobalTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()

	tag := domain.Tag{Text: "global " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (user_id, text) VALUES (NULL, $1) RETURNING id`, tag.Text,
	).Scan(&tag.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGlobalTag: %v", err)
	}

	return tag
}
