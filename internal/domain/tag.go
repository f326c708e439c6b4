package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Tag is a free-form label. A nil UserID marks a global tag visible to everyone.
type Tag struct {
	ID     uuid.UUID  `json:"id"`
	UserID *uuid.UUID `json:"-"`
	Text   string     `json:"text"`
}

// IsGlobal reports whether the tag is shared across users.
func (t Tag) IsGlobal() bool { return t.UserID == nil }

// TagRef references a tag in a link request: either an existing tag by id
// or a new tag to create from raw text.
type TagRef struct {
	id   uuid.UUID
	text string
}

// ExistingTag references a tag that is already stored.
func ExistingTag(id uuid.UUID) TagRef { return TagRef{id: id} }

// NewTag references a tag to be created for the acting user.
func NewTag(text string) TagRef { return TagRef{text: strings.TrimSpace(text)} }

// IsNew reports whether the reference carries text for a tag to create.
func (r TagRef) IsNew() bool { return r.id == uuid.Nil }

// ID returns the referenced tag id; uuid.Nil for new tags.
func (r TagRef) ID() uuid.UUID { return r.id }

// Text returns the raw text of a new tag.
func (r TagRef) Text() string { return r.text }

// NormalizeTagText lowercases and collapses whitespace so that "CPD  Hours"
// and "cpd hours" resolve to the same tag.
func NormalizeTagText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
