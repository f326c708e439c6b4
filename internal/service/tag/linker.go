package tag

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// Linker resolves tag references and rewrites the tag set of an activity or
// goal. It never opens a transaction: callers run it inside their own.
type Linker struct {
	tags tagRepo
}

// NewLinker creates a Linker over the given tag repository.
func NewLinker(tags tagRepo) *Linker {
	return &Linker{tags: tags}
}

// Replace makes refs the complete tag set of the target. Existing tag ids
// must be visible to userID (owned or global). New texts are normalized and
// created under userID, reusing the user's tag with the same text. Duplicate
// references collapse into one link. Returns the linked tags ordered by text.
func (l *Linker) Replace(
	ctx context.Context,
	userID uuid.UUID,
	target domain.TagTarget,
	targetID uuid.UUID,
	refs []domain.TagRef,
) ([]domain.Tag, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("replace tags: unknown target %q", target)
	}

	ids, texts, err := splitRefs(refs)
	if err != nil {
		return nil, err
	}

	resolved, err := l.resolveExisting(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	for _, text := range texts {
		t, err := l.tags.FindOrCreate(ctx, userID, text)
		if err != nil {
			return nil, fmt.Errorf("create tag: %w", err)
		}
		resolved = append(resolved, t)
	}
	resolved = dedupeTags(resolved)

	if err := l.tags.UnlinkAll(ctx, target, targetID); err != nil {
		return nil, fmt.Errorf("unlink tags: %w", err)
	}

	tagIDs := make([]uuid.UUID, len(resolved))
	for i, t := range resolved {
		tagIDs[i] = t.ID
	}
	if _, err := l.tags.Link(ctx, target, targetID, tagIDs); err != nil {
		return nil, fmt.Errorf("link tags: %w", err)
	}

	slices.SortFunc(resolved, func(a, b domain.Tag) int {
		return strings.Compare(a.Text, b.Text)
	})
	return resolved, nil
}

// Load returns the tags of each target id. Targets without tags map to an
// empty slice.
func (l *Linker) Load(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	byTarget, err := l.tags.ListByTargetIDs(ctx, target, targetIDs)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	for _, id := range targetIDs {
		if _, ok := byTarget[id]; !ok {
			byTarget[id] = []domain.Tag{}
		}
	}
	return byTarget, nil
}

func (l *Linker) resolveExisting(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	visible, err := l.tags.GetVisibleByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	if len(visible) == len(ids) {
		return visible, nil
	}

	found := make(map[uuid.UUID]bool, len(visible))
	for _, t := range visible {
		found[t.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
		}
	}
	return visible, nil
}

// splitRefs dedupes existing ids and normalized new texts, keeping first
// occurrence order.
func splitRefs(refs []domain.TagRef) ([]uuid.UUID, []string, error) {
	var (
		ids      []uuid.UUID
		texts    []string
		errs     []domain.FieldError
		seenID   = make(map[uuid.UUID]bool)
		seenText = make(map[string]bool)
	)

	for i, ref := range refs {
		if !ref.IsNew() {
			if !seenID[ref.ID()] {
				seenID[ref.ID()] = true
				ids = append(ids, ref.ID())
			}
			continue
		}

		text := domain.NormalizeTagText(ref.Text())
		field := fmt.Sprintf("tags[%d]", i)
		switch {
		case text == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			continue
		case utf8.RuneCountInString(text) > MaxTagLength:
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxTagLength)})
			continue
		}
		if !seenText[text] {
			seenText[text] = true
			texts = append(texts, text)
		}
	}

	if len(errs) > 0 {
		return nil, nil, &domain.ValidationError{Errors: errs}
	}
	return ids, texts, nil
}

func dedupeTags(tags []domain.Tag) []domain.Tag {
	seen := make(map[uuid.UUID]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
