package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// ExternalID es el id del producto en el API Fake Store (origen del seed);
// es nulo para productos creados manualmente por un admin.
// Rating puede estar ausente por completo (RatingRate y RatingCount en nil).
type Product struct {
	ID          string
	ExternalID  *int
	Title       string
	Description string
	Price       decimal.Decimal // NUMERIC(10,2), nunca negativo
	Category    string
	Image       *string          // URL, opcional
	RatingRate  *decimal.Decimal // 0–5 cuando presente
	RatingCount *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
