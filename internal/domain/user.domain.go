package domain

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCustomer   Role = "customer"
	RoleSuperAdmin Role = "superAdmin"
)

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleCustomer, RoleSuperAdmin:
		return true
	}
	return false
}

type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusBlocked    Status = "blocked"
)

// User is the identity/auth record. A User owns exactly one Customer profile.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	Role              Role
	Status            Status
	IsDeleted         bool
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
