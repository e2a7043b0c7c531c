package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/application/usecase"
	"github.com/tu-usuario/storefront-api/internal/domain"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// AdminProductHandler superficie admin del catálogo: CRUD completo con el
// shape de campos internos incluidos, más la exportación PDF.
type AdminProductHandler struct {
	uc     *usecase.ProductUseCase
	export *usecase.ExportUseCase
}

// NewAdminProductHandler construye el handler admin del catálogo.
func NewAdminProductHandler(uc *usecase.ProductUseCase, export *usecase.ExportUseCase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar productos (admin, shape completo)
// @Tags         admin-products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaginatedResponse
// @Failure      401  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Router       /v1/admin/products [get]
func (h *AdminProductHandler) List(c *fiber.Ctx) error {
	params := query.ParseProductParams(c.Queries())
	items, meta, err := h.uc.List(params)
	if err != nil {
		return Internal(c, err)
	}
	return Paginated(c, dto.ToAdminProductResponses(items), meta)
}

// Show godoc
// @Summary      Obtener producto (admin)
// @Tags         admin-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /v1/admin/products/{id} [get]
func (h *AdminProductHandler) Show(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return Internal(c, err)
	}
	if product == nil {
		return NotFound(c, "Product not found")
	}
	return Success(c, fiber.StatusOK, "Success", dto.ToAdminProductResponse(product))
}

// Store godoc
// @Summary      Crear producto
// @Tags         admin-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Router       /v1/admin/products [post]
func (h *AdminProductHandler) Store(c *fiber.Ctx) error {
	var in dto.StoreProductRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if errs := in.Validate(); !errs.Empty() {
		return ValidationFailed(c, errs)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return Error(c, fiber.StatusConflict, "Product already exists", nil)
		}
		return Internal(c, err)
	}
	return Success(c, fiber.StatusCreated, "Product created successfully", dto.ToAdminProductResponse(product))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         admin-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Router       /v1/admin/products/{id} [put]
func (h *AdminProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if errs := in.Validate(); !errs.Empty() {
		return ValidationFailed(c, errs)
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return Internal(c, err)
	}
	if product == nil {
		return NotFound(c, "Product not found")
	}
	return Success(c, fiber.StatusOK, "Product updated successfully", dto.ToAdminProductResponse(product))
}

// Destroy godoc
// @Summary      Eliminar producto
// @Tags         admin-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /v1/admin/products/{id} [delete]
func (h *AdminProductHandler) Destroy(c *fiber.Ctx) error {
	found, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return Internal(c, err)
	}
	if !found {
		return NotFound(c, "Product not found")
	}
	return Success(c, fiber.StatusOK, "Product deleted successfully", nil)
}

// ExportPDF godoc
// @Summary      Exportar el catálogo completo como PDF
// @Tags         admin-products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /v1/admin/products/export/pdf [get]
func (h *AdminProductHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.export.CatalogPDF()
	if err != nil {
		return Internal(c, err)
	}
	filename := fmt.Sprintf("catalog-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
