package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/application/usecase"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// ProductHandler superficie pública del catálogo (solo lectura).
// El shape público excluye external_id y timestamps.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler público del catálogo.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (público)
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Filtro exacto por categoría"
// @Param        search    query  string  false  "Substring sobre title o description"
// @Param        sort      query  string  false  "price_asc | price_desc | newest"
// @Param        per_page  query  int     false  "Por página [1,100]"  default(15)
// @Param        page      query  int     false  "Página 1-based"      default(1)
// @Success      200  {object}  dto.PaginatedResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := query.ParseProductParams(c.Queries())
	items, meta, err := h.uc.List(params)
	if err != nil {
		return Internal(c, err)
	}
	return Paginated(c, dto.ToProductResponses(items), meta)
}

// Show godoc
// @Summary      Obtener producto (público)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Show(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return Internal(c, err)
	}
	if product == nil {
		return NotFound(c, "Product not found")
	}
	return Success(c, fiber.StatusOK, "Success", dto.ToProductResponse(product))
}
