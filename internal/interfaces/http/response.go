package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// Helpers del envelope uniforme de respuesta.
// Éxito:    {success:true,  message, data?}
// Error:    {success:false, message, errors?}
// Paginado: {success:true,  message, data:[...], pagination:{...}}

// Success responde con el envelope de éxito. data en nil se omite del JSON.
func Success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// Error responde con el envelope de error. errs en nil se omite del JSON.
func Error(c *fiber.Ctx, status int, message string, errs any) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message, Errors: errs})
}

// Paginated responde un listado con metadatos de paginación.
func Paginated(c *fiber.Ctx, data any, meta query.Meta) error {
	return c.Status(fiber.StatusOK).JSON(dto.PaginatedResponse{
		Success:    true,
		Message:    "Data retrieved successfully",
		Data:       data,
		Pagination: dto.NewPagination(meta),
	})
}

// Unauthorized 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message, nil)
}

// Forbidden 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message, nil)
}

// NotFound 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message, nil)
}

// ValidationFailed 422 con errores agrupados por campo.
func ValidationFailed(c *fiber.Ctx, errs dto.ValidationErrors) error {
	return Error(c, fiber.StatusUnprocessableEntity, "Validation failed", errs)
}

// Internal 500. El detalle queda en el log, nunca en la respuesta.
func Internal(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return Error(c, fiber.StatusInternalServerError, "Internal server error", nil)
}
