package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// ──────────────────────────────────────────────────────────────────────────────
// Filtros de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductFilterSQL_SinFiltros(t *testing.T) {
	where, args := productFilterSQL(query.ProductParams{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestProductFilterSQL_Categoria(t *testing.T) {
	where, args := productFilterSQL(query.ProductParams{Category: "electronics"})

	assert.Equal(t, " WHERE category = $1", where)
	assert.Equal(t, []any{"electronics"}, args)
}

// La búsqueda es un OR de title y description, case-insensitive vía ILIKE.
func TestProductFilterSQL_Busqueda(t *testing.T) {
	where, args := productFilterSQL(query.ProductParams{Search: "computer"})

	assert.Equal(t, " WHERE (title ILIKE $1 OR description ILIKE $1)", where)
	assert.Equal(t, []any{"%computer%"}, args)
}

// Filtro y búsqueda se combinan con AND.
func TestProductFilterSQL_CategoriaYBusqueda(t *testing.T) {
	where, args := productFilterSQL(query.ProductParams{
		Category: "electronics",
		Search:   "laptop",
	})

	assert.Equal(t, " WHERE category = $1 AND (title ILIKE $2 OR description ILIKE $2)", where)
	assert.Equal(t, []any{"electronics", "%laptop%"}, args)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden
// ──────────────────────────────────────────────────────────────────────────────

func TestProductOrderSQL(t *testing.T) {
	cases := []struct {
		sort query.Sort
		want string
	}{
		{query.SortPriceAsc, "price ASC, id ASC"},
		{query.SortPriceDesc, "price DESC, id ASC"},
		{query.SortNewest, "created_at DESC, id ASC"},
		{query.SortIDAsc, "id ASC"},
		{query.Sort("garbage"), "id ASC"}, // desconocido = default, nunca error
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, productOrderSQL(tc.sort), "sort=%s", tc.sort)
	}
}

func TestUserOrderSQL(t *testing.T) {
	cases := []struct {
		sort query.Sort
		want string
	}{
		{query.SortNewest, "created_at DESC, id ASC"},
		{query.SortOldest, "created_at ASC, id ASC"},
		{query.SortNameAsc, "name ASC, id ASC"},
		{query.SortNameDesc, "name DESC, id ASC"},
		{query.SortIDAsc, "id ASC"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, userOrderSQL(tc.sort), "sort=%s", tc.sort)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros de cuentas y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestUserFilterSQL(t *testing.T) {
	where, args := userFilterSQL(query.UserParams{Role: "admin", Search: "ana"})

	assert.Equal(t, " WHERE role = $1 AND (name ILIKE $2 OR email ILIKE $2)", where)
	assert.Equal(t, []any{"admin", "%ana%"}, args)
}

// pageSQL continúa la numeración de argumentos después del WHERE.
func TestPageSQL(t *testing.T) {
	clause, args := pageSQL(query.Page{Number: 3, PerPage: 20}, 2)

	assert.Equal(t, " LIMIT $3 OFFSET $4", clause)
	assert.Equal(t, []any{20, 40}, args)
}
