package dto

import "github.com/tu-usuario/storefront-api/internal/domain/query"

// Response envelope uniforme de la API: éxito o error.
// Data y Errors se omiten cuando son nil.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Pagination metadatos de página en respuestas de listado.
// From/To son ordinales 1-based del primer/último elemento; se omiten en
// páginas vacías.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
	From        int `json:"from,omitempty"`
	To          int `json:"to,omitempty"`
}

// PaginatedResponse envelope de listados: data siempre presente (lista plana,
// puede ser vacía) más los metadatos de paginación.
type PaginatedResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination convierte los metadatos del dominio al shape del envelope.
func NewPagination(m query.Meta) Pagination {
	return Pagination{
		CurrentPage: m.CurrentPage,
		PerPage:     m.PerPage,
		Total:       m.Total,
		LastPage:    m.LastPage,
		From:        m.From,
		To:          m.To,
	}
}

// ValidationErrors errores de validación agrupados por campo, con mensajes
// legibles para el cliente (shape del 422).
type ValidationErrors map[string][]string

// Add agrega un mensaje al campo.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Empty indica si no hay errores.
func (v ValidationErrors) Empty() bool { return len(v) == 0 }
