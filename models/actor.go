package models

// Role identifies what kind of actor is attached to a request.
type Role string

const (
	RoleCitizen Role = "CITIZEN"
	RoleLawyer  Role = "LAWYER"
	RoleNGO     Role = "NGO"
	RoleAdmin   Role = "ADMIN"
)

// IsProviderRole reports whether the role can be booked for appointments.
func (r Role) IsProviderRole() bool {
	return r == RoleLawyer || r == RoleNGO
}

// IsRequesterRole reports whether the role can create appointment requests.
func (r Role) IsRequesterRole() bool {
	return r == RoleCitizen
}

// Actor is the authenticated identity resolved by the auth middleware.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
