package http_test

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/storefront-api/internal/application/usecase"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/storefront-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/storefront-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// stubPDFGenerator evita depender del motor PDF real en los tests del handler.
type stubPDFGenerator struct {
	lastCount int
}

func (g *stubPDFGenerator) GenerateCatalogPDF(products []*entity.Product) ([]byte, error) {
	g.lastCount = len(products)
	return []byte("%PDF-1.7 stub"), nil
}

// buildAdminCatalogApp monta las rutas admin del catálogo con el stack de
// middlewares completo y un admin autenticado.
func buildAdminCatalogApp(t *testing.T, store *fakeProductStore, gen *stubPDFGenerator) (*fiber.App, string) {
	t.Helper()
	tokens := newFakeTokenStore()
	uc := usecase.NewProductUseCase(store)
	export := usecase.NewExportUseCase(store, gen)
	handler := apphttp.NewAdminProductHandler(uc, export)

	app := fiber.New()
	admin := app.Group("/v1/admin",
		apphttp.AuthMiddleware(testJWTSecret, tokens),
		apphttp.RequireRole(entity.RoleAdmin),
	)
	admin.Get("/products/export/pdf", handler.ExportPDF)
	admin.Get("/products", handler.List)
	admin.Get("/products/:id", handler.Show)
	admin.Post("/products", handler.Store)
	admin.Put("/products/:id", handler.Update)
	admin.Delete("/products/:id", handler.Destroy)

	require.NoError(t, tokens.Create(&entity.AccessToken{
		ID: testTokenID, UserID: adminID, Name: "api_login_token", CreatedAt: time.Now(),
	}))
	tok, err := pkgjwt.Generate(testJWTSecret, adminID, testTokenID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return app, "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Store / Update / Destroy
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminProducts_Store_Retorna201ConShapeCompleto(t *testing.T) {
	store := newFakeProductStore(nil, 0)
	app, auth := buildAdminCatalogApp(t, store, &stubPDFGenerator{})

	resp := doJSON(t, app, http.MethodPost, "/v1/admin/products", auth, map[string]any{
		"title":       "Teclado mecánico",
		"description": "Switches rojos, layout español.",
		"price":       "89.90",
		"category":    "electronics",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Product created successfully", body["message"])

	item, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, item["id"], "el producto creado debe llevar id generado")
	// El shape admin incluye los campos internos, aunque vengan en null.
	assert.Contains(t, item, "external_id")
	assert.Contains(t, item, "created_at")
}

func TestAdminProducts_Store_SinCamposObligatorios_Retorna422(t *testing.T) {
	store := newFakeProductStore(nil, 0)
	app, auth := buildAdminCatalogApp(t, store, &stubPDFGenerator{})

	resp := doJSON(t, app, http.MethodPost, "/v1/admin/products", auth, map[string]any{
		"title": "Solo título",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "category")
}

func TestAdminProducts_Store_PrecioNegativo_Retorna422(t *testing.T) {
	store := newFakeProductStore(nil, 0)
	app, auth := buildAdminCatalogApp(t, store, &stubPDFGenerator{})

	resp := doJSON(t, app, http.MethodPost, "/v1/admin/products", auth, map[string]any{
		"title":       "Inválido",
		"description": "Precio negativo.",
		"price":       "-1",
		"category":    "misc",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "price")
}

// Actualización parcial: solo el campo enviado cambia.
func TestAdminProducts_Update_Parcial_Retorna200(t *testing.T) {
	store := newFakeProductStore([]*entity.Product{sampleProduct("p1", "Laptop")}, 1)
	app, auth := buildAdminCatalogApp(t, store, &stubPDFGenerator{})

	resp := doJSON(t, app, http.MethodPut, "/v1/admin/products/p1", auth, map[string]any{
		"price": "149.50",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	updated, err := store.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "149.5", updated.Price.String())
	assert.Equal(t, "Laptop", updated.Title, "los campos no enviados no cambian")
}

func TestAdminProducts_Update_Inexistente_Retorna404(t *testing.T) {
	store := newFakeProductStore(nil, 0)
	app, auth := buildAdminCatalogApp(t, store, &stubPDFGenerator{})

	resp := doJSON(t, app, http.MethodPut, "/v1/admin/products/no-existe", auth, map[string]any{
		"title": "Da igual",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminProducts_Destroy_Retorna200YLuego404(t *testing.T) {
	store := newFakeProductStore([]*entity.Product{sampleProduct("p1", "Laptop")}, 1)
	app, auth := buildAdminCatalogApp(t, store, &stubPDFGenerator{})

	resp := doJSON(t, app, http.MethodDelete, "/v1/admin/products/p1", auth, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/v1/admin/products/p1", auth, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminProducts_ExportPDF_HeadersYContenido(t *testing.T) {
	page := []*entity.Product{sampleProduct("p1", "Laptop"), sampleProduct("p2", "Mouse")}
	gen := &stubPDFGenerator{}
	app, auth := buildAdminCatalogApp(t, newFakeProductStore(page, 2), gen)

	resp := doJSON(t, app, http.MethodGet, "/v1/admin/products/export/pdf", auth, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 stub", string(raw))
	assert.Equal(t, 2, gen.lastCount, "el PDF debe cubrir el catálogo completo")
}
