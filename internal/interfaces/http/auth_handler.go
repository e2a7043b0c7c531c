package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-api/internal/application/auth"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/domain"
)

// AuthHandler maneja registro, login, logout y la cuenta actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, password_confirmation, role?"
// @Success      201   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Failure      429   {object}  dto.Response
// @Router       /v1/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if errs := in.Validate(); !errs.Empty() {
		return ValidationFailed(c, errs)
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return ValidationFailed(c, dto.ValidationErrors{
				"email": {"The email has already been taken."},
			})
		}
		return Internal(c, err)
	}
	return Success(c, fiber.StatusCreated, "User registered successfully", out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Failure      429   {object}  dto.Response
// @Router       /v1/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	errs := dto.ValidationErrors{}
	if in.Email == "" {
		errs.Add("email", "The email field is required.")
	}
	if in.Password == "" {
		errs.Add("password", "The password field is required.")
	}
	if !errs.Empty() {
		return ValidationFailed(c, errs)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Cuenta inexistente y password incorrecto responden igual: nunca 404,
		// para no permitir enumerar cuentas.
		if errors.Is(err, domain.ErrUnauthorized) {
			return Unauthorized(c, "Invalid credentials")
		}
		return Internal(c, err)
	}
	return Success(c, fiber.StatusOK, "Login successful", out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token presentado)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /v1/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(GetTokenID(c)); err != nil {
		return Internal(c, err)
	}
	return Success(c, fiber.StatusOK, "Logged out successfully", nil)
}

// User godoc
// @Summary      Cuenta del token presentado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /v1/user [get]
func (h *AuthHandler) User(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return Unauthorized(c, "Unauthenticated")
		}
		return Internal(c, err)
	}
	return Success(c, fiber.StatusOK, "Success", fiber.Map{"user": user})
}
