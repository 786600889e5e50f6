package order

import (
	"context"
	"io"
	"log"

	"savage-storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, order_number, customer_name, customer_email, customer_phone, shipping_address, items, total_amount, status, payment_method, COALESCE(notes, ''), created_at`

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (order_number, customer_name, customer_email, customer_phone, shipping_address, items, total_amount, status, payment_method, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))
RETURNING id::text, created_at
`
	if err := r.pool.QueryRow(ctx, q,
		o.OrderNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.ShippingAddress, o.Items, o.TotalAmount, string(o.Status), o.PaymentMethod, o.Notes,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		r.logger.Printf("order repo: create number=%s error=%v", o.OrderNumber, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s number=%s total=%d", o.ID, o.OrderNumber, o.TotalAmount)
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC
`
	return r.queryOrders(ctx, q)
}

func (r *postgresRepo) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE status = $1
ORDER BY created_at DESC
`
	return r.queryOrders(ctx, q, string(status))
}

func (r *postgresRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE customer_email = $1
ORDER BY created_at DESC
`
	return r.queryOrders(ctx, q, email)
}

// UpdateStatus overwrites the stored status unconditionally; the previous
// value does not constrain the new one. Last write wins.
func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: status id=%s -> %s", id, status)
	return nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, q string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.ShippingAddress, &o.Items, &o.TotalAmount, &status, &o.PaymentMethod, &o.Notes, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Status = domain.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("order repo: list count=%d", len(result))
	return result, nil
}
