package product

import (
	"context"
	"errors"
	"io"
	"log"

	"savage-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, name, description, price, image_url, category, sizes, colors, in_stock, featured, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE featured
ORDER BY created_at DESC
`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) queryProducts(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, image_url, category, sizes, colors, in_stock, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id::text, created_at
`
	if err := r.pool.QueryRow(ctx, q,
		p.Name, p.Description, p.Price, p.ImageURL, p.Category,
		jsonList(p.Sizes), jsonList(p.Colors), p.InStock, p.Featured,
	).Scan(&p.ID, &p.CreatedAt); err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2,
    description = $3,
    price = $4,
    image_url = $5,
    category = $6,
    sizes = $7,
    colors = $8,
    in_stock = $9,
    featured = $10
WHERE id = $1
RETURNING created_at
`
	if err := r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category,
		jsonList(p.Sizes), jsonList(p.Colors), p.InStock, p.Featured,
	).Scan(&p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category,
		&p.Sizes, &p.Colors, &p.InStock, &p.Featured, &p.CreatedAt,
	)
}

// jsonList keeps jsonb columns as [] rather than null for nil slices.
func jsonList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
