package usecase

import (
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
)

// CatalogPDFGenerator puerto de generación del PDF del catálogo.
// Lo implementa infrastructure/pdf con Maroto.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(products []*entity.Product) ([]byte, error)
}

// ExportUseCase exportación del catálogo completo (superficie admin).
type ExportUseCase struct {
	repo      repository.ProductRepository
	generator CatalogPDFGenerator
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(repo repository.ProductRepository, generator CatalogPDFGenerator) *ExportUseCase {
	return &ExportUseCase{repo: repo, generator: generator}
}

// CatalogPDF genera el PDF del catálogo completo ordenado por categoría.
func (uc *ExportUseCase) CatalogPDF() ([]byte, error) {
	products, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalogPDF(products)
}
