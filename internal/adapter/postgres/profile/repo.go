// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

const table = "profiles"

var columns = []string{
	"id", "user_id", "first_name", "last_name", "phone", "registration_number",
	"role", "is_therapeutically_endorsed", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new profile repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByUserID returns the profile of an identity-provider user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID})

	p, err := scanProfile(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return &p, nil
}

// List returns profiles ordered by last and first name.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("last_name", "first_name", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	result := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return result, nil
}

// Upsert creates the user's profile or updates its personal fields. Role is
// only written on insert; use UpdateRole to change it afterwards.
func (r *Repo) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	role := p.Role
	if role == "" {
		role = domain.RoleOptometrist
	}

	q := postgres.Builder().
		Insert(table).
		Columns("user_id", "first_name", "last_name", "phone", "registration_number",
			"role", "is_therapeutically_endorsed").
		Values(p.UserID, p.FirstName, p.LastName, postgres.Text(p.Phone), postgres.Text(p.RegistrationNumber),
			string(role), p.IsTherapeuticallyEndorsed).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			registration_number = EXCLUDED.registration_number,
			is_therapeutically_endorsed = EXCLUDED.is_therapeutically_endorsed,
			updated_at = now()
		RETURNING ` + strings.Join(columns, ", "))

	saved, err := scanProfile(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID)
	}
	return &saved, nil
}

// UpdateRole changes the role of an existing profile.
func (r *Repo) UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	q := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	p, err := scanProfile(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return &p, nil
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var (
		p        domain.Profile
		phone    pgtype.Text
		regNo    pgtype.Text
		roleText string
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &phone, &regNo,
		&roleText, &p.IsTherapeuticallyEndorsed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Profile{}, err
	}

	p.Phone = postgres.StringPtr(phone)
	p.RegistrationNumber = postgres.StringPtr(regNo)
	p.Role = domain.Role(roleText)
	return p, nil
}
