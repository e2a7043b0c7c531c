package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/application/usecase"
	"github.com/tu-usuario/storefront-api/internal/domain"
	"github.com/tu-usuario/storefront-api/internal/domain/policy"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// AdminUserHandler administración de cuentas. El gate admin corre en el
// router; las reglas de auto-protección (no degradarse, no auto-eliminarse)
// corren en el use case y llegan aquí como *policy.DeniedError.
type AdminUserHandler struct {
	uc *usecase.UserUseCase
}

// NewAdminUserHandler construye el handler admin de cuentas.
func NewAdminUserHandler(uc *usecase.UserUseCase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        role      query  string  false  "Filtro exacto por rol"
// @Param        search    query  string  false  "Substring sobre name o email"
// @Param        sort      query  string  false  "newest | oldest | name_asc | name_desc"
// @Param        per_page  query  int     false  "Por página [1,100]"  default(15)
// @Param        page      query  int     false  "Página 1-based"      default(1)
// @Success      200  {object}  dto.PaginatedResponse
// @Router       /v1/admin/users [get]
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	params := query.ParseUserParams(c.Queries())
	items, meta, err := h.uc.List(params)
	if err != nil {
		return Internal(c, err)
	}
	return Paginated(c, dto.ToUserResponses(items), meta)
}

// Show godoc
// @Summary      Obtener cuenta
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /v1/admin/users/{id} [get]
func (h *AdminUserHandler) Show(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return Internal(c, err)
	}
	if user == nil {
		return NotFound(c, "User not found")
	}
	return Success(c, fiber.StatusOK, "User retrieved successfully", dto.ToUserResponse(user))
}

// Store godoc
// @Summary      Crear cuenta
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreUserRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Router       /v1/admin/users [post]
func (h *AdminUserHandler) Store(c *fiber.Ctx) error {
	var in dto.StoreUserRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if errs := in.Validate(); !errs.Empty() {
		return ValidationFailed(c, errs)
	}
	user, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return ValidationFailed(c, dto.ValidationErrors{
				"email": {"The email has already been taken."},
			})
		}
		return Internal(c, err)
	}
	return Success(c, fiber.StatusCreated, "User created successfully", dto.ToUserResponse(user))
}

// Update godoc
// @Summary      Actualizar cuenta
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Router       /v1/admin/users/{id} [put]
func (h *AdminUserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if errs := in.Validate(); !errs.Empty() {
		return ValidationFailed(c, errs)
	}
	user, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		var denied *policy.DeniedError
		if errors.As(err, &denied) {
			return Forbidden(c, denied.Reason)
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return ValidationFailed(c, dto.ValidationErrors{
				"email": {"The email has already been taken."},
			})
		}
		return Internal(c, err)
	}
	if user == nil {
		return NotFound(c, "User not found")
	}
	return Success(c, fiber.StatusOK, "User updated successfully", dto.ToUserResponse(user))
}

// Destroy godoc
// @Summary      Eliminar cuenta
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminUserHandler) Destroy(c *fiber.Ctx) error {
	found, err := h.uc.Delete(GetUserID(c), c.Params("id"))
	if err != nil {
		var denied *policy.DeniedError
		if errors.As(err, &denied) {
			return Forbidden(c, denied.Reason)
		}
		return Internal(c, err)
	}
	if !found {
		return NotFound(c, "User not found")
	}
	return Success(c, fiber.StatusOK, "User deleted successfully", nil)
}
