package domain

import (
	"strings"
)

// Role is the portal role of a user.
type Role string

const (
	RoleRecruiter   Role = "recruiter"
	RoleCandidate   Role = "candidate"
	RoleAdmin       Role = "admin"
	RoleInterviewer Role = "interviewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRecruiter, RoleCandidate, RoleAdmin, RoleInterviewer:
		return true
	}
	return false
}

// User represents the person using the portal.
// swagger:model User
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   Role    `json:"role"`
	Brand  BrandID `json:"brand"`
	Avatar string  `json:"avatar,omitempty"`
}

// Identity is the set of claims a session carries about the signed-in person.
type Identity struct {
	Name   string
	Email  string
	Role   Role
	Avatar string
}

// DefaultRecruiterName is used when the identity provider returned no display name.
const DefaultRecruiterName = "Recruiter"

// NewIdentity returns an Identity with the recruiter role. An empty name falls back to DefaultRecruiterName.
func NewIdentity(name, email, avatar string) *Identity {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultRecruiterName
	}
	return &Identity{
		Name:   name,
		Email:  strings.TrimSpace(strings.ToLower(email)),
		Role:   RoleRecruiter,
		Avatar: avatar,
	}
}

// Present reports whether the identity can bind a live adapter.
func (i *Identity) Present() bool {
	return i != nil && strings.TrimSpace(i.Email) != ""
}

// User converts the identity into a User affiliated with brand. The email doubles as the user ID.
func (i *Identity) User(brand BrandID) *User {
	role := i.Role
	if !role.Valid() {
		role = RoleRecruiter
	}
	return &User{
		ID:     i.Email,
		Name:   i.Name,
		Email:  i.Email,
		Role:   role,
		Brand:  brand,
		Avatar: i.Avatar,
	}
}
