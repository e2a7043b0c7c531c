package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/storefront-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/storefront-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testTokenID   = "00000000-0000-0000-0000-00000000aaaa"
	testIssuer    = "storefront-api-test"
	testExpMin    = 60
)

// fakeTokenStore implementación en memoria del puerto TokenRepository.
// La existencia de la entrada es lo que hace válido al bearer token.
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*entity.AccessToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*entity.AccessToken)}
}

func (s *fakeTokenStore) Create(token *entity.AccessToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.ID] = token
	return nil
}

func (s *fakeTokenStore) GetByID(id string) (*entity.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[id], nil
}

func (s *fakeTokenStore) Touch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok, ok := s.tokens[id]; ok {
		now := time.Now()
		tok.LastUsedAt = &now
	}
	return nil
}

func (s *fakeTokenStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, id)
	return nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT contra el store y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(store *fakeTokenStore, allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// issueToken registra un token vivo en el store y devuelve el header Bearer.
func issueToken(t *testing.T, store *fakeTokenStore, role string) string {
	t.Helper()
	require.NoError(t, store.Create(&entity.AccessToken{
		ID:        testTokenID,
		UserID:    testUserID,
		Name:      "api_login_token",
		CreatedAt: time.Now(),
	}))
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testTokenID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization → HTTP 401 Unauthenticated.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeTokenStore(), entity.RoleAdmin)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Unauthenticated",
		"la respuesta debe usar el mensaje uniforme Unauthenticated")
}

// Caso 2: Token inválido / malformado → HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeTokenStore(), entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: JWT firmado correctamente pero cuyo jti ya no existe en el store
// (logout) → HTTP 401. El mensaje es el mismo que para un token malformado.
func TestAuthMiddleware_TokenRevocado_Retorna401(t *testing.T) {
	store := newFakeTokenStore()
	app := buildTestApp(store, entity.RoleAdmin)

	header := issueToken(t, store, "admin")
	require.NoError(t, store.Delete(testTokenID)) // logout

	resp := doRequest(t, app, header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token revocado debe rechazarse aunque la firma sea válida")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Unauthenticated")
}

// Caso 4: El middleware carga los claims en locals para los handlers.
func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	store := newFakeTokenStore()
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"token_id": apphttp.GetTokenID(c),
			"role":     apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", issueToken(t, store, "customer"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testTokenID, body["token_id"])
	assert.Equal(t, "customer", body["role"])
}

// Caso 5: Cada petición autenticada marca last_used_at en el store.
func TestAuthMiddleware_MarcaLastUsedAt(t *testing.T) {
	store := newFakeTokenStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, issueToken(t, store, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rec, err := store.GetByID(testTokenID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotNil(t, rec.LastUsedAt, "el middleware debe marcar last_used_at")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	store := newFakeTokenStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, issueToken(t, store, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 2: Customer autenticado en ruta admin → HTTP 403 con el mensaje de rol.
func TestRequireRole_CustomerBloqueadoEnRutaAdmin(t *testing.T) {
	store := newFakeTokenStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, issueToken(t, store, "customer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"customer no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Forbidden. You do not have the required role.")
}

// Caso 3: Token con rol desconocido → HTTP 401, no 403: un rol que no parsea
// equivale a un token que no identifica al actor.
func TestRequireRole_RolDesconocido_Retorna401(t *testing.T) {
	store := newFakeTokenStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, issueToken(t, store, "superuser"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testTokenID, "customer", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, tokenID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testTokenID, tokenID)
	assert.Equal(t, "customer", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testTokenID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testTokenID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
