package repository

import (
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// UserRepository puerto de persistencia para cuentas.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.User, error)
	// FindByEmail busca por email normalizado a minúsculas. (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// List devuelve la página de cuentas que satisface la especificación y el
	// total de filas que pasan el filtro antes de paginar.
	List(params query.UserParams) ([]*entity.User, int, error)
}
