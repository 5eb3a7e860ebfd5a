package distributor

import (
	"context"
	"errors"

	"backoffice-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const distributorColumns = `id::text, name, cnpj, COALESCE(state, ''), minimum_order_cents, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Distributor, error) {
	const q = `
SELECT ` + distributorColumns + `
FROM distributors
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Distributor
	for rows.Next() {
		var d domain.Distributor
		if err := scanDistributor(rows, &d); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Distributor, error) {
	const q = `
SELECT ` + distributorColumns + `
FROM distributors
WHERE id = $1
`
	var d domain.Distributor
	if err := scanDistributor(r.pool.QueryRow(ctx, q, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) Create(ctx context.Context, d domain.Distributor) (*domain.Distributor, error) {
	const q = `
INSERT INTO distributors (name, cnpj, state, minimum_order_cents)
VALUES ($1, $2, NULLIF($3, ''), $4)
RETURNING ` + distributorColumns + `
`
	var out domain.Distributor
	if err := scanDistributor(r.pool.QueryRow(ctx, q, d.Name, d.CNPJ, d.State, d.MinimumOrderCents), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, d domain.Distributor) (*domain.Distributor, error) {
	const q = `
UPDATE distributors
SET name = $2, cnpj = $3, state = NULLIF($4, ''), minimum_order_cents = $5
WHERE id = $1
RETURNING ` + distributorColumns + `
`
	var out domain.Distributor
	if err := scanDistributor(r.pool.QueryRow(ctx, q, d.ID, d.Name, d.CNPJ, d.State, d.MinimumOrderCents), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func scanDistributor(row pgx.Row, d *domain.Distributor) error {
	return row.Scan(&d.ID, &d.Name, &d.CNPJ, &d.State, &d.MinimumOrderCents, &d.CreatedAt)
}
