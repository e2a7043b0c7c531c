package entity

import "time"

// AccessToken es el registro de un bearer token vivo. El ID coincide con el
// claim jti del JWT emitido: si la fila no existe el token está revocado.
// Una cuenta puede tener varios tokens vivos a la vez (multi-sesión).
type AccessToken struct {
	ID         string
	UserID     string
	Name       string // "api_login_token" | "api_registration_token"
	CreatedAt  time.Time
	LastUsedAt *time.Time
}
