package entity

import "time"

// Role es el rol de una cuenta. Son exactamente dos valores; todo punto de
// decisión (gate, policy) hace switch exhaustivo sobre este tipo para que
// agregar un rol futuro sea un cambio visible en compilación.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole normaliza un string a Role. ok=false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCustomer:
		return RoleCustomer, true
	default:
		return "", false
	}
}

// Valid indica si el rol es uno de los dos valores permitidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User representa una cuenta del sistema.
// El email se persiste en minúsculas; la unicidad es case-insensitive por convención.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Role            Role
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
