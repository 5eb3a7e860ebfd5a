package ticket

import (
	"context"
	"errors"

	"backoffice-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ticketColumns = `id, client_id, subject, COALESCE(body, ''), status, tags, COALESCE(owner, ''), created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	q := `
SELECT ` + ticketColumns + `
FROM tickets
ORDER BY updated_at DESC
`
	var args []interface{}
	if status != "" {
		q = `
SELECT ` + ticketColumns + `
FROM tickets
WHERE status = $1
ORDER BY updated_at DESC
`
		args = append(args, string(status))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const q = `
SELECT ` + ticketColumns + `
FROM tickets
WHERE id = $1
`
	var t domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, q, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const commentsQ = `
SELECT id::text, ticket_id, author, body, created_at
FROM ticket_comments
WHERE ticket_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, commentsQ, t.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.TicketComment
		if err := rows.Scan(&c.ID, &c.TicketID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		t.Comments = append(t.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	const q = `
INSERT INTO tickets (id, client_id, subject, body, status, tags, owner)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''))
RETURNING ` + ticketColumns + `
`
	var out domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, q, t.ID, t.ClientID, t.Subject, t.Body, string(t.Status), t.Tags, t.Owner), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	const q = `
UPDATE tickets
SET subject = $2, body = NULLIF($3, ''), status = $4, tags = $5, owner = NULLIF($6, ''), updated_at = now()
WHERE id = $1
RETURNING ` + ticketColumns + `
`
	var out domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, q, t.ID, t.Subject, t.Body, string(t.Status), t.Tags, t.Owner), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) AddComment(ctx context.Context, c domain.TicketComment) (*domain.TicketComment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var out domain.TicketComment
	err = tx.QueryRow(ctx, `
INSERT INTO ticket_comments (ticket_id, author, body)
VALUES ($1, $2, $3)
RETURNING id::text, ticket_id, author, body, created_at
`, c.TicketID, c.Author, c.Body).Scan(&out.ID, &out.TicketID, &out.Author, &out.Body, &out.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Commenting counts as activity on the ticket.
	if _, err := tx.Exec(ctx, `UPDATE tickets SET updated_at = now() WHERE id = $1`, c.TicketID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func scanTicket(row pgx.Row, t *domain.Ticket) error {
	return row.Scan(&t.ID, &t.ClientID, &t.Subject, &t.Body, &t.Status, &t.Tags, &t.Owner, &t.CreatedAt, &t.UpdatedAt)
}
