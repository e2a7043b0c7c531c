package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// ──────────────────────────────────────────────────────────────────────────────
// ClampPerPage
// ──────────────────────────────────────────────────────────────────────────────

func TestClampPerPage(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"ausente usa el default", "", 15},
		{"no numérico usa el default", "abc", 15},
		{"cero sube al mínimo", "0", 1},
		{"negativo sube al mínimo", "-3", 1},
		{"dentro del rango se respeta", "5", 5},
		{"límite superior se respeta", "100", 100},
		{"por encima baja al máximo", "150", 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, query.ClampPerPage(tc.in))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de parámetros
// ──────────────────────────────────────────────────────────────────────────────

func TestParseProductParams_Defaults(t *testing.T) {
	p := query.ParseProductParams(map[string]string{})

	assert.Empty(t, p.Category)
	assert.Empty(t, p.Search)
	assert.Equal(t, query.SortIDAsc, p.Sort)
	assert.Equal(t, 1, p.Page.Number)
	assert.Equal(t, 15, p.Page.PerPage)
}

func TestParseProductParams_SortReconocido(t *testing.T) {
	for _, s := range []query.Sort{query.SortPriceAsc, query.SortPriceDesc, query.SortNewest} {
		p := query.ParseProductParams(map[string]string{"sort": string(s)})
		assert.Equal(t, s, p.Sort)
	}
}

// Un sort desconocido cae al orden por identidad, nunca es un error.
func TestParseProductParams_SortDesconocidoCaeAlDefault(t *testing.T) {
	p := query.ParseProductParams(map[string]string{"sort": "tricky_sort"})
	assert.Equal(t, query.SortIDAsc, p.Sort)

	// oldest es válido para cuentas pero no para productos
	p = query.ParseProductParams(map[string]string{"sort": "oldest"})
	assert.Equal(t, query.SortIDAsc, p.Sort)
}

func TestParseProductParams_FiltrosYPagina(t *testing.T) {
	p := query.ParseProductParams(map[string]string{
		"category": "electronics",
		"search":   "computer",
		"page":     "3",
		"per_page": "20",
	})

	assert.Equal(t, "electronics", p.Category)
	assert.Equal(t, "computer", p.Search)
	assert.Equal(t, 3, p.Page.Number)
	assert.Equal(t, 20, p.Page.PerPage)
	assert.Equal(t, 40, p.Page.Offset())
}

func TestParseProductParams_PaginaInvalida(t *testing.T) {
	p := query.ParseProductParams(map[string]string{"page": "0"})
	assert.Equal(t, 1, p.Page.Number)

	p = query.ParseProductParams(map[string]string{"page": "xyz"})
	assert.Equal(t, 1, p.Page.Number)
}

func TestParseUserParams(t *testing.T) {
	p := query.ParseUserParams(map[string]string{
		"role":   "admin",
		"search": "ana",
		"sort":   "name_desc",
	})

	assert.Equal(t, "admin", p.Role)
	assert.Equal(t, "ana", p.Search)
	assert.Equal(t, query.SortNameDesc, p.Sort)
}

func TestParseUserParams_SortDeProductosNoAplica(t *testing.T) {
	// price_asc es de productos; en cuentas cae al default
	p := query.ParseUserParams(map[string]string{"sort": "price_asc"})
	assert.Equal(t, query.SortIDAsc, p.Sort)
}

// ──────────────────────────────────────────────────────────────────────────────
// PageMeta
// ──────────────────────────────────────────────────────────────────────────────

func TestPageMeta_TotalCero(t *testing.T) {
	m := query.PageMeta(query.Page{Number: 1, PerPage: 15}, 0, 0)

	assert.Equal(t, 1, m.LastPage, "total=0 debe dar last_page=1, no 0")
	assert.Equal(t, 0, m.Total)
	assert.Zero(t, m.From)
	assert.Zero(t, m.To)
}

func TestPageMeta_LastPageEsTechoDelCociente(t *testing.T) {
	cases := []struct {
		total, perPage, want int
	}{
		{30, 15, 2},
		{31, 15, 3},
		{1, 15, 1},
		{15, 15, 1},
		{100, 100, 1},
		{101, 100, 2},
	}
	for _, tc := range cases {
		m := query.PageMeta(query.Page{Number: 1, PerPage: tc.perPage}, tc.total, tc.perPage)
		assert.Equal(t, tc.want, m.LastPage, "total=%d per_page=%d", tc.total, tc.perPage)
	}
}

func TestPageMeta_Ordinales(t *testing.T) {
	// Página 2 de 15: elementos 16..30
	m := query.PageMeta(query.Page{Number: 2, PerPage: 15}, 45, 15)
	assert.Equal(t, 16, m.From)
	assert.Equal(t, 30, m.To)

	// Última página parcial: 31..35
	m = query.PageMeta(query.Page{Number: 3, PerPage: 15}, 35, 5)
	assert.Equal(t, 31, m.From)
	assert.Equal(t, 35, m.To)
}

// Pedir una página más allá de la última da lista vacía, no error ni 404.
func TestPageMeta_PaginaMasAllaDeLaUltima(t *testing.T) {
	m := query.PageMeta(query.Page{Number: 9, PerPage: 15}, 30, 0)

	assert.Equal(t, 9, m.CurrentPage)
	assert.Equal(t, 2, m.LastPage)
	assert.Zero(t, m.From)
	assert.Zero(t, m.To)
}
