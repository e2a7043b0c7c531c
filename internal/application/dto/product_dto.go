package dto

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
)

// Rating calificación agregada de un producto. Ambos campos pueden ser null.
type Rating struct {
	Rate  *decimal.Decimal `json:"rate"`
	Count *int             `json:"count"`
}

// ProductResponse shape público de un producto: sin external_id ni timestamps.
type ProductResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       *string         `json:"image"`
	Rating      Rating          `json:"rating"`
}

// AdminProductResponse shape admin: campos internos incluidos.
type AdminProductResponse struct {
	ID          string          `json:"id"`
	ExternalID  *int            `json:"external_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       *string         `json:"image"`
	Rating      Rating          `json:"rating"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse proyección pública de un producto.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      Rating{Rate: p.RatingRate, Count: p.RatingCount},
	}
}

// ToProductResponses proyección pública de una página de productos.
// Devuelve slice vacío (no nil) para que el JSON sea [] y no null.
func ToProductResponses(items []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// ToAdminProductResponse proyección admin de un producto.
func ToAdminProductResponse(p *entity.Product) AdminProductResponse {
	return AdminProductResponse{
		ID:          p.ID,
		ExternalID:  p.ExternalID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      Rating{Rate: p.RatingRate, Count: p.RatingCount},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToAdminProductResponses proyección admin de una página de productos.
func ToAdminProductResponses(items []*entity.Product) []AdminProductResponse {
	out := make([]AdminProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToAdminProductResponse(p))
	}
	return out
}

// StoreProductRequest entrada para crear un producto (admin).
type StoreProductRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Image       *string          `json:"image"`
	RatingRate  *decimal.Decimal `json:"rating_rate"`
	RatingCount *int             `json:"rating_count"`
}

// Validate valida la creación. Devuelve errores agrupados por campo (422).
func (r *StoreProductRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if r.Title == "" {
		errs.Add("title", "The title field is required.")
	} else if len(r.Title) > 255 {
		errs.Add("title", "The title field must not be greater than 255 characters.")
	}
	if r.Description == "" {
		errs.Add("description", "The description field is required.")
	}
	if r.Price == nil {
		errs.Add("price", "The price field is required.")
	} else if r.Price.IsNegative() {
		errs.Add("price", "The price field must be at least 0.")
	}
	if r.Category == "" {
		errs.Add("category", "The category field is required.")
	} else if len(r.Category) > 100 {
		errs.Add("category", "The category field must not be greater than 100 characters.")
	}
	validateProductOptionals(errs, r.Image, r.RatingRate, r.RatingCount)
	return errs
}

// UpdateProductRequest entrada para actualizar un producto (admin).
// Los campos en nil no se modifican.
type UpdateProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	RatingRate  *decimal.Decimal `json:"rating_rate"`
	RatingCount *int             `json:"rating_count"`
}

// Validate valida la actualización parcial.
func (r *UpdateProductRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if r.Title != nil {
		if *r.Title == "" {
			errs.Add("title", "The title field is required.")
		} else if len(*r.Title) > 255 {
			errs.Add("title", "The title field must not be greater than 255 characters.")
		}
	}
	if r.Description != nil && *r.Description == "" {
		errs.Add("description", "The description field is required.")
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs.Add("price", "The price field must be at least 0.")
	}
	if r.Category != nil && len(*r.Category) > 100 {
		errs.Add("category", "The category field must not be greater than 100 characters.")
	}
	validateProductOptionals(errs, r.Image, r.RatingRate, r.RatingCount)
	return errs
}

var (
	ratingMin = decimal.Zero
	ratingMax = decimal.NewFromInt(5)
)

func validateProductOptionals(errs ValidationErrors, image *string, rate *decimal.Decimal, count *int) {
	if image != nil && *image != "" {
		if len(*image) > 500 {
			errs.Add("image", "The image field must not be greater than 500 characters.")
		}
		if u, err := url.Parse(*image); err != nil || u.Scheme == "" || u.Host == "" {
			errs.Add("image", "The image field must be a valid URL.")
		}
	}
	if rate != nil && (rate.LessThan(ratingMin) || rate.GreaterThan(ratingMax)) {
		errs.Add("rating_rate", "The rating rate field must be between 0 and 5.")
	}
	if count != nil && *count < 0 {
		errs.Add("rating_count", "The rating count field must be at least 0.")
	}
}
