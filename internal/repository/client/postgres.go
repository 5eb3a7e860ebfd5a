package client

import (
	"context"
	"errors"
	"io"
	"log"

	"backoffice-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `id, trade_name, legal_name, document, email, COALESCE(phone, ''), COALESCE(region, ''), created_at`

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

func (r *postgresRepo) List(ctx context.Context, query string) ([]domain.Client, error) {
	q := `
SELECT ` + clientColumns + `
FROM clients
ORDER BY created_at DESC
`
	args := []interface{}{}
	if query != "" {
		q = `
SELECT ` + clientColumns + `
FROM clients
WHERE trade_name ILIKE '%' || $1 || '%'
   OR legal_name ILIKE '%' || $1 || '%'
   OR document = $1
ORDER BY created_at DESC
`
		args = append(args, query)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("client repo: list query=%q error=%v", query, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("client repo: list rows query=%q error=%v", query, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	q := `
SELECT ` + clientColumns + `
FROM clients
WHERE id = $1
`
	var c domain.Client
	if err := scanClient(r.pool.QueryRow(ctx, q, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("client repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	const q = `
INSERT INTO clients (trade_name, legal_name, document, email, phone, region)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
RETURNING ` + clientColumns + `
`
	var out domain.Client
	if err := scanClient(r.pool.QueryRow(ctx, q, c.TradeName, c.LegalName, c.Document, c.Email, c.Phone, c.Region), &out); err != nil {
		r.logger.Printf("client repo: create document=%s error=%v", c.Document, err)
		return nil, err
	}
	r.logger.Printf("client repo: created id=%s document=%s", out.ID, out.Document)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Client) (*domain.Client, error) {
	const q = `
UPDATE clients
SET trade_name = $2, legal_name = $3, document = $4, email = $5, phone = NULLIF($6, ''), region = NULLIF($7, '')
WHERE id = $1
RETURNING ` + clientColumns + `
`
	var out domain.Client
	if err := scanClient(r.pool.QueryRow(ctx, q, c.ID, c.TradeName, c.LegalName, c.Document, c.Email, c.Phone, c.Region), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("client repo: update id=%s error=%v", c.ID, err)
		return nil, err
	}
	return &out, nil
}

// Upsert keys on document, so re-importing the same CSV is idempotent.
func (r *postgresRepo) Upsert(ctx context.Context, c domain.Client) (*domain.Client, error) {
	const q = `
INSERT INTO clients (trade_name, legal_name, document, email, phone, region)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
ON CONFLICT (document) DO UPDATE SET
    trade_name = EXCLUDED.trade_name,
    legal_name = EXCLUDED.legal_name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    region = EXCLUDED.region
RETURNING ` + clientColumns + `
`
	var out domain.Client
	if err := scanClient(r.pool.QueryRow(ctx, q, c.TradeName, c.LegalName, c.Document, c.Email, c.Phone, c.Region), &out); err != nil {
		r.logger.Printf("client repo: upsert document=%s error=%v", c.Document, err)
		return nil, err
	}
	r.logger.Printf("client repo: upserted id=%s document=%s", out.ID, out.Document)
	return &out, nil
}

func (r *postgresRepo) ListUsers(ctx context.Context, clientID string) ([]domain.ClientUser, error) {
	const q = `
SELECT id, client_id, name, email, COALESCE(role, ''), created_at
FROM client_users
WHERE client_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, clientID)
	if err != nil {
		r.logger.Printf("client repo: list users client_id=%s error=%v", clientID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClientUser
	for rows.Next() {
		var u domain.ClientUser
		if err := rows.Scan(&u.ID, &u.ClientID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func scanClient(row pgx.Row, c *domain.Client) error {
	return row.Scan(&c.ID, &c.TradeName, &c.LegalName, &c.Document, &c.Email, &c.Phone, &c.Region, &c.CreatedAt)
}
