// Package query normaliza los parámetros de listado (filtro, búsqueda,
// orden y paginación) a una especificación determinista, independiente del
// almacenamiento. La capa postgres traduce la especificación a SQL.
package query

import "strconv"

// Valores por defecto y límites de paginación.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
	DefaultPage    = 1
)

// Sort es una clave de orden ya normalizada. Un valor no reconocido en la
// petición cae a SortIDAsc sin error: política de fallback, no un fallo.
type Sort string

const (
	SortIDAsc     Sort = "id_asc"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortNameAsc   Sort = "name_asc"
	SortNameDesc  Sort = "name_desc"
)

// Page es la ventana de paginación ya saneada (1-based, PerPage en [1,100]).
type Page struct {
	Number  int
	PerPage int
}

// Offset devuelve el desplazamiento 0-based para LIMIT/OFFSET.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// ProductParams especificación de listado de productos.
type ProductParams struct {
	Category string // filtro exacto; vacío = sin filtro
	Search   string // substring sobre title OR description, case-insensitive
	Sort     Sort
	Page     Page
}

// UserParams especificación de listado de cuentas.
type UserParams struct {
	Role   string // filtro exacto; vacío = sin filtro
	Search string // substring sobre name OR email, case-insensitive
	Sort   Sort
	Page   Page
}

// ParseProductParams normaliza el mapa plano de query params de un listado
// de productos. Nunca retorna error: valores no reconocidos caen al default.
func ParseProductParams(params map[string]string) ProductParams {
	return ProductParams{
		Category: params["category"],
		Search:   params["search"],
		Sort:     parseProductSort(params["sort"]),
		Page:     parsePage(params),
	}
}

// ParseUserParams normaliza el mapa plano de query params de un listado de cuentas.
func ParseUserParams(params map[string]string) UserParams {
	return UserParams{
		Role:   params["role"],
		Search: params["search"],
		Sort:   parseUserSort(params["sort"]),
		Page:   parsePage(params),
	}
}

func parseProductSort(s string) Sort {
	switch Sort(s) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		return Sort(s)
	default:
		return SortIDAsc
	}
}

func parseUserSort(s string) Sort {
	switch Sort(s) {
	case SortNewest, SortOldest, SortNameAsc, SortNameDesc:
		return Sort(s)
	default:
		return SortIDAsc
	}
}

func parsePage(params map[string]string) Page {
	return Page{
		Number:  parsePageNumber(params["page"]),
		PerPage: ClampPerPage(params["per_page"]),
	}
}

func parsePageNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// ClampPerPage sanea per_page: no numérico o ausente → default;
// fuera de [1, MaxPerPage] → se ajusta al límite más cercano.
func ClampPerPage(s string) int {
	if s == "" {
		return DefaultPerPage
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultPerPage
	}
	if n < 1 {
		return 1
	}
	if n > MaxPerPage {
		return MaxPerPage
	}
	return n
}

// Meta son los metadatos de página de una respuesta paginada.
// From y To son ordinales 1-based del primer y último elemento de la página;
// valen 0 cuando la página está vacía (se omiten en el JSON).
type Meta struct {
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
	From        int
	To          int
}

// PageMeta calcula los metadatos para una página con `count` elementos de un
// total de `total` filas que pasan el filtro. Con total=0, LastPage es 1 y la
// página vacía no es un error. Una página más allá de LastPage da count=0.
func PageMeta(p Page, total, count int) Meta {
	lastPage := (total + p.PerPage - 1) / p.PerPage
	if lastPage < 1 {
		lastPage = 1
	}
	m := Meta{
		CurrentPage: p.Number,
		PerPage:     p.PerPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if count > 0 {
		m.From = p.Offset() + 1
		m.To = p.Offset() + count
	}
	return m
}
