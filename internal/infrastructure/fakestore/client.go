// Package fakestore importa el catálogo inicial desde el API público de
// Fake Store (https://fakestoreapi.com). Lo usa cmd/seed; el upsert por
// external_id hace la importación idempotente.
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
)

// Client cliente HTTP del API Fake Store.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient construye el cliente. url es el endpoint de productos completo.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Shape del payload de Fake Store. rating puede faltar por completo.
type ratingPayload struct {
	Rate  *decimal.Decimal `json:"rate"`
	Count *int             `json:"count"`
}

type productPayload struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Rating      *ratingPayload   `json:"rating"`
}

// FetchProducts descarga el catálogo y lo mapea a entidades listas para
// upsert, con los mismos defaults que aplica el importador a datos faltantes.
func (c *Client) FetchProducts(ctx context.Context) ([]*entity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fakestore: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fakestore: llamar API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fakestore: status %d: %s", resp.StatusCode, string(body))
	}

	var payload []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fakestore: decodificar respuesta: %w", err)
	}

	now := time.Now()
	products := make([]*entity.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, mapProduct(p, now))
	}
	return products, nil
}

func mapProduct(p productPayload, now time.Time) *entity.Product {
	externalID := p.ID
	product := &entity.Product{
		ID:          uuid.New().String(),
		ExternalID:  &externalID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Title == "" {
		product.Title = "Untitled"
	}
	if product.Category == "" {
		product.Category = "uncategorized"
	}
	if p.Price != nil && !p.Price.IsNegative() {
		product.Price = *p.Price
	}
	if p.Image != "" {
		image := p.Image
		product.Image = &image
	}
	if p.Rating != nil {
		product.RatingRate = p.Rating.Rate
		product.RatingCount = p.Rating.Count
	}
	return product
}
