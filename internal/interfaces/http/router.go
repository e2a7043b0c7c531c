package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tu-usuario/storefront-api/internal/application/auth"
	"github.com/tu-usuario/storefront-api/internal/application/usecase"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	ExportUC  *usecase.ExportUseCase
	TokenRepo repository.TokenRepository
	JWTSecret string
}

// Router registra las rutas de la API (versión v1).
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/v1")

	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	adminProductHandler := NewAdminProductHandler(deps.ProductUC, deps.ExportUC)
	adminUserHandler := NewAdminUserHandler(deps.UserUC)

	// Registro y login comparten un throttle de 10 peticiones/minuto por IP.
	authLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return Error(c, fiber.StatusTooManyRequests, "Too many requests", nil)
		},
	})

	// Público
	v1.Post("/register", authLimiter, authHandler.Register)
	v1.Post("/login", authLimiter, authHandler.Login)
	v1.Get("/products", productHandler.List)
	v1.Get("/products/:id", productHandler.Show)

	// Autenticado (Bearer Token vivo)
	protected := v1.Group("/", AuthMiddleware(deps.JWTSecret, deps.TokenRepo))
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/user", authHandler.User)

	// Admin (gate por rol, antes de la policy por registro)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))

	admin.Get("/products", adminProductHandler.List)
	admin.Post("/products", adminProductHandler.Store)
	admin.Get("/products/export/pdf", adminProductHandler.ExportPDF)
	admin.Get("/products/:id", adminProductHandler.Show)
	admin.Put("/products/:id", adminProductHandler.Update)
	admin.Delete("/products/:id", adminProductHandler.Destroy)

	admin.Get("/users", adminUserHandler.List)
	admin.Post("/users", adminUserHandler.Store)
	admin.Get("/users/:id", adminUserHandler.Show)
	admin.Put("/users/:id", adminUserHandler.Update)
	admin.Delete("/users/:id", adminUserHandler.Destroy)
}
