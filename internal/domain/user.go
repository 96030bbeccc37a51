package domain

import "time"

// Role is the coarse capability class of an account.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleEmployer Role = "EMPLOYER"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleEmployee || r == RoleEmployer
}

// User is the domain model for accounts. Email doubles as the login
// identifier; Role is fixed at creation.
type User struct {
	ID              string
	Email           string
	Username        string
	PasswordHash    string
	Role            Role
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
