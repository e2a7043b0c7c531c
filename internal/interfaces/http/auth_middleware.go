package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
	"github.com/tu-usuario/storefront-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID  = "user_id"
	LocalTokenID = "token_id"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token: firma y expiración del JWT, y que su
// jti siga vivo en access_tokens (si la fila no existe el token fue revocado).
// Carga user_id, token_id y role en c.Locals. Toda falla responde 401 con el
// mismo mensaje para no filtrar el motivo.
func AuthMiddleware(jwtSecret string, tokens repository.TokenRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized(c, "Unauthenticated")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return Unauthorized(c, "Unauthenticated")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return Unauthorized(c, "Unauthenticated")
		}
		userID, tokenID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return Unauthorized(c, "Unauthenticated")
		}
		record, err := tokens.GetByID(tokenID)
		if err != nil {
			return Internal(c, err)
		}
		if record == nil {
			return Unauthorized(c, "Unauthenticated")
		}
		// Mejor esfuerzo: un fallo al marcar last_used_at no tumba la petición.
		_ = tokens.Touch(tokenID)

		c.Locals(LocalUserID, userID)
		c.Locals(LocalTokenID, tokenID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole gate por rol del endpoint: el rol del actor debe estar en el
// conjunto declarado. Debe usarse DESPUÉS de AuthMiddleware. Es independiente
// de la policy por registro, que corre después en el use case.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := entity.ParseRole(GetRole(c))
		if !ok {
			return Unauthorized(c, "Unauthenticated")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return Forbidden(c, "Forbidden. You do not have the required role.")
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTokenID devuelve el TokenID (jti) del contexto.
func GetTokenID(c *fiber.Ctx) string {
	v := c.Locals(LocalTokenID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto, sin validar.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
