package product

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

const productColumns = `id::text, distributor_id::text, code, name, COALESCE(description, ''), price_cents, COALESCE(unit, ''), active, created_at`

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

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE 1=1
`
	var args []interface{}
	if f.DistributorID != "" {
		args = append(args, f.DistributorID)
		q += fmt.Sprintf("AND distributor_id = $%d\n", len(args))
	}
	if f.Query != "" {
		args = append(args, f.Query)
		q += fmt.Sprintf("AND (name ILIKE '%%' || $%d || '%%' OR code = $%d)\n", len(args), len(args))
	}
	q += "ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list distributor_id=%s query=%q error=%v", f.DistributorID, f.Query, err)
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
		return nil, err
	}
	r.logger.Printf("product repo: list distributor_id=%s count=%d", f.DistributorID, len(result))
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
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (distributor_id, code, name, description, price_cents, unit, active)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)
RETURNING ` + productColumns + `
`
	var out domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, p.DistributorID, p.Code, p.Name, p.Description, p.PriceCents, p.Unit, p.Active), &out); err != nil {
		r.logger.Printf("product repo: create code=%s error=%v", p.Code, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s code=%s", out.ID, out.Code)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET distributor_id = $2, code = $3, name = $4, description = NULLIF($5, ''), price_cents = $6, unit = NULLIF($7, ''), active = $8
WHERE id = $1
RETURNING ` + productColumns + `
`
	var out domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, p.ID, p.DistributorID, p.Code, p.Name, p.Description, p.PriceCents, p.Unit, p.Active), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return &out, nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(&p.ID, &p.DistributorID, &p.Code, &p.Name, &p.Description, &p.PriceCents, &p.Unit, &p.Active, &p.CreatedAt)
}
