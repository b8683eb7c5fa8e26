package domain

import "time"

// Role determines which operations a principal may perform in principle.
type Role string

const (
	RoleUser    Role = "user"
	RoleStyler  Role = "styler"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

// selfRegisterRoles are the roles an account may be created with through the
// public registration endpoint. Admin accounts are seeded out of band.
var selfRegisterRoles = map[Role]struct{}{
	RoleUser:    {},
	RoleStyler:  {},
	RolePartner: {},
}

// CanSelfRegister reports whether role may be chosen at registration time.
func (r Role) CanSelfRegister() bool {
	_, ok := selfRegisterRoles[r]
	return ok
}

// RequiresApproval reports whether accounts with this role must be approved
// by an admin before they can log in.
func (r Role) RequiresApproval() bool {
	return r == RoleStyler || r == RolePartner
}

// Account is the persisted identity of a principal. Email is stored
// lowercased so uniqueness is case-insensitive.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}
