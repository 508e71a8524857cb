package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is one of the platform's fixed roles.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleCliente          Role = "cliente"
	RoleSupervisorCocina Role = "supervisor_cocina"
	RoleSupervisorVentas Role = "supervisor_ventas"
	RoleRepartidor       Role = "repartidor"
)

// Valid reports whether r belongs to the fixed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCliente, RoleSupervisorCocina, RoleSupervisorVentas, RoleRepartidor:
		return true
	}
	return false
}

// AdminLevel reports whether the role carries admin-level permissions.
// True for admin and both supervisor roles; cliente and repartidor are
// unprivileged.
func (r Role) AdminLevel() bool {
	switch r {
	case RoleAdmin, RoleSupervisorCocina, RoleSupervisorVentas:
		return true
	}
	return false
}

// User represents a user in the system.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
