package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
)

// ProductUseCase operaciones del catálogo. El listado sirve tanto a la
// superficie pública como a la admin; cada handler proyecta el shape que le
// corresponde.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso del catálogo.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve la página de productos y sus metadatos de paginación.
func (uc *ProductUseCase) List(params query.ProductParams) ([]*entity.Product, query.Meta, error) {
	items, total, err := uc.repo.List(params)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return items, query.PageMeta(params.Page, total, len(items)), nil
}

// GetByID devuelve un producto, o (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// Create persiste un producto nuevo a partir de una petición ya validada.
func (uc *ProductUseCase) Create(in dto.StoreProductRequest) (*entity.Product, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Image:       in.Image,
		RatingRate:  in.RatingRate,
		RatingCount: in.RatingCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update aplica una actualización parcial. (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Image != nil {
		product.Image = in.Image
	}
	if in.RatingRate != nil {
		product.RatingRate = in.RatingRate
	}
	if in.RatingCount != nil {
		product.RatingCount = in.RatingCount
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto. found=false si no existía.
func (uc *ProductUseCase) Delete(id string) (found bool, err error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}
