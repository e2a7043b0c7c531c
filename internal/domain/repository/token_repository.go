package repository

import "github.com/tu-usuario/storefront-api/internal/domain/entity"

// TokenRepository puerto de persistencia para tokens de acceso vivos.
// La existencia de la fila es lo que mantiene válido un bearer token.
type TokenRepository interface {
	Create(token *entity.AccessToken) error
	// GetByID devuelve (nil, nil) si el token fue revocado o nunca existió.
	GetByID(id string) (*entity.AccessToken, error)
	// Touch actualiza last_used_at (mejor esfuerzo, cada petición autenticada).
	Touch(id string) error
	// Delete revoca el token (logout).
	Delete(id string) error
}
