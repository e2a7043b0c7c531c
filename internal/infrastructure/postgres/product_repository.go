package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storefront-api/internal/domain"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, external_id, title, description, price, category, image, rating_rate, rating_count, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para el catálogo.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ExternalID, product.Title, product.Description,
		product.Price, product.Category, product.Image, product.RatingRate,
		product.RatingCount, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET title = $2, description = $3, price = $4, category = $5, image = $6,
		    rating_rate = $7, rating_count = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Title, product.Description, product.Price,
		product.Category, product.Image, product.RatingRate, product.RatingCount,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID (borrado físico).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List devuelve la página que satisface la especificación y el total de filas
// que pasan el filtro. Una página más allá de la última devuelve lista vacía.
func (r *ProductRepo) List(params query.ProductParams) ([]*entity.Product, int, error) {
	ctx := context.Background()
	where, args := productFilterSQL(params)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	page, pageArgs := pageSQL(params.Page, len(args))
	sql := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY ` + productOrderSQL(params.Sort) + page
	rows, err := r.q.Query(ctx, sql, append(args, pageArgs...)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// ListAll devuelve el catálogo completo ordenado por categoría y título.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY category ASC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpsertByExternalID inserta o actualiza por external_id (seed de Fake Store).
func (r *ProductRepo) UpsertByExternalID(product *entity.Product) (bool, error) {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (external_id) WHERE external_id IS NOT NULL DO UPDATE
		SET title = EXCLUDED.title, description = EXCLUDED.description,
		    price = EXCLUDED.price, category = EXCLUDED.category,
		    image = EXCLUDED.image, rating_rate = EXCLUDED.rating_rate,
		    rating_count = EXCLUDED.rating_count, updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)`
	var created bool
	err := r.q.QueryRow(context.Background(), query,
		product.ID, product.ExternalID, product.Title, product.Description,
		product.Price, product.Category, product.Image, product.RatingRate,
		product.RatingCount, product.CreatedAt, product.UpdatedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert product: %w", err)
	}
	return created, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.ExternalID, &p.Title, &p.Description, &p.Price, &p.Category,
		&p.Image, &p.RatingRate, &p.RatingCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
