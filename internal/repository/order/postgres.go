package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"backoffice-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, number, client_id, user_id, status, total_cents, created_at`

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

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Order, error) {
	q := `
SELECT ` + orderColumns + `
FROM orders
WHERE 1=1
`
	var args []interface{}
	if f.ClientID != "" {
		args = append(args, f.ClientID)
		q += fmt.Sprintf("AND client_id = $%d\n", len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		q += fmt.Sprintf("AND status = $%d\n", len(args))
	}
	q += "ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list client_id=%s status=%s error=%v", f.ClientID, f.Status, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}

	const itemsQ = `
SELECT id::text, order_id::text, product_id::text, product_name, product_code, quantity, unit_price_cents, total_cents
FROM order_items
WHERE order_id = $1
ORDER BY product_code ASC
`
	rows, err := r.pool.Query(ctx, itemsQ, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.ProductCode, &item.Quantity, &item.UnitPriceCents, &item.TotalCents); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the order and its items in one transaction; the caller is
// expected to have computed line and order totals already.
func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var orderID string
	err = tx.QueryRow(ctx, `
INSERT INTO orders (number, client_id, user_id, status, total_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text
`, o.Number, o.ClientID, o.UserID, string(o.Status), o.TotalCents).Scan(&orderID)
	if err != nil {
		r.logger.Printf("order repo: create number=%s error=%v", o.Number, err)
		return nil, err
	}

	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, product_name, product_code, quantity, unit_price_cents, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, orderID, item.ProductID, item.ProductName, item.ProductCode, item.Quantity, item.UnitPriceCents, item.TotalCents); err != nil {
			r.logger.Printf("order repo: create item order_id=%s product=%s error=%v", orderID, item.ProductCode, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s number=%s items=%d", orderID, o.Number, len(o.Items))
	return r.GetByID(ctx, orderID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $2
WHERE id = $1
`, id, string(status))
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(&o.ID, &o.Number, &o.ClientID, &o.UserID, &o.Status, &o.TotalCents, &o.CreatedAt)
}
