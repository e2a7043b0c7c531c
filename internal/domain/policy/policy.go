// Package policy contiene las reglas de autorización por registro sobre
// cuentas: una lista explícita de auto-protecciones (un admin no puede
// degradarse ni eliminarse a sí mismo), no un motor ACL general.
// El gate por rol del endpoint corre antes y es independiente.
package policy

import "github.com/tu-usuario/storefront-api/internal/domain/entity"

// Decision es el resultado de una evaluación: Allow, o Deny con la razón
// que el handler traduce a un 403 con ese mensaje.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow decisión afirmativa.
func Allow() Decision { return Decision{Allowed: true} }

// DeniedError envuelve una denegación para atravesar capas como error;
// el handler la traduce a 403 con la razón.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string { return e.Reason }

// Err devuelve nil si la decisión permite, o un *DeniedError con la razón.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &DeniedError{Reason: d.Reason}
}

// Deny decisión negativa con razón legible para el cliente.
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// CanDelete decide si actor puede eliminar la cuenta target.
// Solo los admin llegan aquí (el gate por rol filtra antes); la única regla
// es que nadie elimina su propia cuenta.
func CanDelete(actor, target *entity.User) Decision {
	if actor.ID == target.ID {
		return Deny("You cannot delete your own account")
	}
	return Allow()
}

// CanUpdate decide si actor puede actualizar la cuenta target.
// proposedRole es el rol propuesto en la petición, nil si no se envía.
// Sobre otras cuentas no hay restricción. Sobre la propia, un admin no puede
// cambiarse el rol; el resto de campos (name, email, password) siempre se permite.
func CanUpdate(actor, target *entity.User, proposedRole *entity.Role) Decision {
	if actor.ID != target.ID {
		return Allow()
	}
	if proposedRole != nil && *proposedRole != target.Role {
		switch actor.Role {
		case entity.RoleAdmin:
			return Deny("You cannot change your own role")
		case entity.RoleCustomer:
			return Allow()
		}
	}
	return Allow()
}
