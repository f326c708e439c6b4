package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user professional record. UserID references the
// external identity provider.
type Profile struct {
	ID                        uuid.UUID
	UserID                    uuid.UUID
	FirstName                 string
	LastName                  string
	Phone                     *string
	RegistrationNumber        *string
	Role                      Role
	IsTherapeuticallyEndorsed bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
