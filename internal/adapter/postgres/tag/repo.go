// Package tag implements tag storage and the activity/goal tag join tables
// using PostgreSQL. Tags with a NULL user_id are global.
package tag

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// joinTable describes the M2M table for a tag target.
type joinTable struct {
	name      string
	targetCol string
}

var joinTables = map[domain.TagTarget]joinTable{
	domain.TagTargetActivity: {name: "activity_tags", targetCol: "activity_id"},
	domain.TagTargetGoal:     {name: "goal_tags", targetCol: "goal_id"},
}

func tableFor(target domain.TagTarget) (joinTable, error) {
	jt, ok := joinTables[target]
	if !ok {
		return joinTable{}, fmt.Errorf("unknown tag target %q", target)
	}
	return jt, nil
}

const linkSQL = `INSERT INTO %s (%s, tag_id) SELECT $1, unnest($2::uuid[]) ON CONFLICT DO NOTHING`

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new tag repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// visibleTo matches tags owned by userID and global tags.
func visibleTo(userID uuid.UUID) sq.Sqlizer {
	return sq.Or{sq.Eq{"t.user_id": userID}, sq.Eq{"t.user_id": nil}}
}

// ListVisible returns the user's own tags and every global tag, ordered by text.
func (r *Repo) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	q := postgres.Builder().
		Select("t.id", "t.user_id", "t.text").
		From("tags t").
		Where(visibleTo(userID)).
		OrderBy("t.text", "t.id")

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	result := []domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return result, nil
}

// GetVisibleByIDs returns the subset of ids the user may link. Unknown ids
// and other users' tags are silently absent from the result.
func (r *Repo) GetVisibleByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	q := postgres.Builder().
		Select("t.id", "t.user_id", "t.text").
		From("tags t").
		Where(sq.Expr("t.id = ANY(?::uuid[])", ids)).
		Where(visibleTo(userID))

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}
	defer rows.Close()

	result := []domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}
	return result, nil
}

// FindOrCreate returns the user's tag with text, creating it when missing.
// text must already be normalized.
func (r *Repo) FindOrCreate(ctx context.Context, userID uuid.UUID, text string) (domain.Tag, error) {
	q := postgres.Builder().
		Insert("tags").
		Columns("user_id", "text").
		Values(userID, text).
		Suffix(`ON CONFLICT ON CONSTRAINT tags_owner_text_unique DO UPDATE SET text = EXCLUDED.text
			RETURNING id, user_id, text`)

	t, err := scanTag(postgres.QueryRow(ctx, r.db, q))
	if err != nil {
		return domain.Tag{}, postgres.MapError(err, "tag", postgres.Key(text))
	}
	return t, nil
}

// UnlinkAll removes every tag link of a target.
func (r *Repo) UnlinkAll(ctx context.Context, target domain.TagTarget, targetID uuid.UUID) error {
	jt, err := tableFor(target)
	if err != nil {
		return err
	}

	q := postgres.Builder().
		Delete(jt.name).
		Where(sq.Eq{jt.targetCol: targetID})

	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, jt.name, targetID)
	}
	return nil
}

// Link attaches tagIDs to a target. Idempotent: existing links are kept
// (ON CONFLICT DO NOTHING). Returns the number of new links.
func (r *Repo) Link(ctx context.Context, target domain.TagTarget, targetID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}
	jt, err := tableFor(target)
	if err != nil {
		return 0, err
	}

	sql := fmt.Sprintf(linkSQL, jt.name, jt.targetCol)
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, targetID, tagIDs)
	if err != nil {
		return 0, postgres.MapError(err, jt.name, targetID)
	}
	return int(tag.RowsAffected()), nil
}

// ListByTargetIDs returns the tags linked to each target, grouped by target id.
// Targets without tags are absent from the map.
func (r *Repo) ListByTargetIDs(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	result := make(map[uuid.UUID][]domain.Tag)
	if len(targetIDs) == 0 {
		return result, nil
	}
	jt, err := tableFor(target)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Select("j."+jt.targetCol, "t.id", "t.user_id", "t.text").
		From(jt.name + " j").
		Join("tags t ON t.id = j.tag_id").
		Where(sq.Expr("j."+jt.targetCol+" = ANY(?::uuid[])", targetIDs)).
		OrderBy("j."+jt.targetCol, "t.text")

	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("list tags by %s: %w", jt.targetCol, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			targetID uuid.UUID
			t        domain.Tag
			owner    pgtype.UUID
		)
		if err := rows.Scan(&targetID, &t.ID, &owner, &t.Text); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		t.UserID = uuidPtr(owner)
		result[targetID] = append(result[targetID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags by %s: %w", jt.targetCol, err)
	}
	return result, nil
}

func scanTag(row pgx.Row) (domain.Tag, error) {
	var (
		t     domain.Tag
		owner pgtype.UUID
	)
	if err := row.Scan(&t.ID, &owner, &t.Text); err != nil {
		return domain.Tag{}, err
	}
	t.UserID = uuidPtr(owner)
	return t, nil
}

func uuidPtr(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	id := uuid.UUID(u.Bytes)
	return &id
}
