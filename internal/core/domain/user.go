package domain

import (
	"slices"
	"time"
)

// Role names carried in the token's roles claim.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a stored login credential.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the authenticated subject bound to a single request.
type Identity struct {
	Username string
	Roles    []string
}

// HasRole reports whether the identity carries role.
func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// Identity returns the identity a successful login with this user produces.
func (u *User) Identity() *Identity {
	return &Identity{Username: u.Username, Roles: slices.Clone(u.Roles)}
}
