package postgres

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/storefront-api/internal/domain/query"
)

// Traducción de la especificación normalizada de listado a fragmentos SQL.
// Separada del repositorio para poder probarla sin base de datos.

// productFilterSQL devuelve la cláusula WHERE (con espacio inicial, o vacía)
// y sus argumentos posicionales. Filtro y búsqueda se combinan con AND; las
// dos sub-condiciones de búsqueda con OR.
func productFilterSQL(p query.ProductParams) (string, []any) {
	var conds []string
	var args []any
	if p.Category != "" {
		args = append(args, p.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// productOrderSQL devuelve la cláusula ORDER BY para la clave normalizada.
// id ASC como desempate secundario mantiene el orden estable y determinista.
func productOrderSQL(s query.Sort) string {
	switch s {
	case query.SortPriceAsc:
		return "price ASC, id ASC"
	case query.SortPriceDesc:
		return "price DESC, id ASC"
	case query.SortNewest:
		return "created_at DESC, id ASC"
	default:
		return "id ASC"
	}
}

// userFilterSQL análogo a productFilterSQL para cuentas.
func userFilterSQL(p query.UserParams) (string, []any) {
	var conds []string
	var args []any
	if p.Role != "" {
		args = append(args, p.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// userOrderSQL devuelve la cláusula ORDER BY para listados de cuentas.
func userOrderSQL(s query.Sort) string {
	switch s {
	case query.SortNewest:
		return "created_at DESC, id ASC"
	case query.SortOldest:
		return "created_at ASC, id ASC"
	case query.SortNameAsc:
		return "name ASC, id ASC"
	case query.SortNameDesc:
		return "name DESC, id ASC"
	default:
		return "id ASC"
	}
}

// pageSQL devuelve LIMIT/OFFSET continuando la numeración de argumentos.
func pageSQL(p query.Page, argOffset int) (string, []any) {
	clause := fmt.Sprintf(" LIMIT $%d OFFSET $%d", argOffset+1, argOffset+2)
	return clause, []any{p.PerPage, p.Offset()}
}
