package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя админки.
type Role string

const (
	RoleStaff      Role = "STAFF"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsAdmin — даёт ли роль доступ к административным маршрутам.
func (r Role) IsAdmin() bool { return r == RoleAdmin || r == RoleSuperAdmin }

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}
