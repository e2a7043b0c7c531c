package repository

import (
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// ProductRepository puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// List devuelve la página de productos que satisface la especificación y
	// el total de filas que pasan el filtro antes de paginar.
	List(params query.ProductParams) ([]*entity.Product, int, error)
	// ListAll devuelve el catálogo completo ordenado por categoría y título
	// (exportación PDF).
	ListAll() ([]*entity.Product, error)
	// UpsertByExternalID inserta o actualiza por external_id (importación
	// desde Fake Store). created=true si la fila es nueva.
	UpsertByExternalID(product *entity.Product) (created bool, err error)
}
