package cart

import (
	"context"
	"errors"

	"backoffice-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cartColumns = `id, client_id, user_id, status, total_items, total_cents, created_at, last_modified_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByClient(ctx context.Context, clientID, userID string) ([]domain.Cart, error) {
	q := `
SELECT ` + cartColumns + `
FROM carts
WHERE client_id = $1
ORDER BY created_at DESC
`
	args := []interface{}{clientID}
	if userID != "" {
		q = `
SELECT ` + cartColumns + `
FROM carts
WHERE client_id = $1 AND user_id = $2
ORDER BY created_at DESC
`
		args = append(args, userID)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carts []domain.Cart
	for rows.Next() {
		var c domain.Cart
		if err := scanCart(rows, &c); err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	q := `
SELECT ` + cartColumns + `
FROM carts
WHERE id = $1
`
	var c domain.Cart
	if err := scanCart(r.pool.QueryRow(ctx, q, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	carts := []domain.Cart{c}
	if err := r.attachItems(ctx, carts); err != nil {
		return nil, err
	}
	return &carts[0], nil
}

// Restore archives every cart of the target's (client, user) pair and makes
// the target the active one, all inside one transaction. The initial
// SELECT ... FOR UPDATE on the target row serializes concurrent restores for
// the same pair.
func (r *postgresRepo) Restore(ctx context.Context, id string) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var clientID, userID string
	err = tx.QueryRow(ctx, `
SELECT client_id, user_id
FROM carts
WHERE id = $1
FOR UPDATE
`, id).Scan(&clientID, &userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	// Sweep the whole pair first; the target is re-activated below. Only
	// rows that were active get their timestamp bumped.
	if _, err := tx.Exec(ctx, `
UPDATE carts
SET status = 'archived', last_modified_at = now()
WHERE client_id = $1 AND user_id = $2 AND status = 'active'
`, clientID, userID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
UPDATE carts
SET status = 'active', last_modified_at = now()
WHERE id = $1
`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// scanCart works for both pgx.Row and pgx.Rows.
func scanCart(row pgx.Row, c *domain.Cart) error {
	return row.Scan(
		&c.ID,
		&c.ClientID,
		&c.UserID,
		&c.Status,
		&c.TotalItems,
		&c.TotalCents,
		&c.CreatedAt,
		&c.LastModifiedAt,
	)
}

func (r *postgresRepo) attachItems(ctx context.Context, carts []domain.Cart) error {
	if len(carts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(carts))
	index := make(map[string]int, len(carts))
	for i, c := range carts {
		ids = append(ids, c.ID)
		index[c.ID] = i
	}

	const q = `
SELECT id::text, cart_id, product_id::text, product_name, product_code, quantity, unit_price_cents, total_cents, position
FROM cart_items
WHERE cart_id = ANY($1)
ORDER BY cart_id, position ASC
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductCode,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.TotalCents,
			&item.Position,
		); err != nil {
			return err
		}
		if i, ok := index[item.CartID]; ok {
			carts[i].Items = append(carts[i].Items, item)
		}
	}
	return rows.Err()
}
