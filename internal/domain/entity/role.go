package entity

import "github.com/google/uuid"

// Role is the closed set of user roles. Access decisions are total over this
// type; anything outside the known constants is denied.
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RoleAdmin      Role = "admin"
	RoleResearcher Role = "researcher"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin, RoleResearcher:
		return true
	}
	return false
}

// Actor is the authenticated identity attached to a request by the auth
// middleware. It carries the user id, never a profile id.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}
