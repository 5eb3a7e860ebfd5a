package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Code       string
	Name       string
	PriceCents int64
	Unit       string
}

type cartSeed struct {
	ID     string
	UserID string
	Status string
	Items  []cartItemSeed
}

type cartItemSeed struct {
	Code     string
	Quantity int
}

// Apply inserts demo data for manual testing: one client with two buyers, a
// distributor with a small catalog, and a cart history that exercises the
// restore flow (one active and one archived cart for the same buyer).
// Idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	clientID, err := ensureClient(ctx, pool)
	if err != nil {
		return fmt.Errorf("ensure client: %w", err)
	}

	users := []struct{ ID, Name, Email, Role string }{
		{"1-1", "Paula Ribeiro", "paula@mercadocentral.test", "comprador"},
		{"1-2", "Carlos Mota", "carlos@mercadocentral.test", "gerente"},
	}
	for _, u := range users {
		if _, err := pool.Exec(ctx, `
INSERT INTO client_users (id, client_id, name, email, role)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role
`, u.ID, clientID, u.Name, u.Email, u.Role); err != nil {
			return fmt.Errorf("upsert user %s: %w", u.ID, err)
		}
	}

	distributorID, err := ensureDistributor(ctx, pool)
	if err != nil {
		return fmt.Errorf("ensure distributor: %w", err)
	}

	products := []productSeed{
		{Code: "ARZ-5", Name: "Arroz Branco 5kg", PriceCents: 1500, Unit: "pacote"},
		{Code: "FEJ-1", Name: "Feijao Carioca 1kg", PriceCents: 800, Unit: "pacote"},
		{Code: "OLE-900", Name: "Oleo de Soja 900ml", PriceCents: 650, Unit: "garrafa"},
	}
	productIDs := make(map[string]string, len(products))
	for _, p := range products {
		id, err := upsertProduct(ctx, pool, distributorID, p)
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Code, err)
		}
		productIDs[p.Code] = id
	}

	carts := []cartSeed{
		{ID: "cart-1001", UserID: "1-1", Status: "active", Items: []cartItemSeed{
			{Code: "ARZ-5", Quantity: 2},
			{Code: "FEJ-1", Quantity: 5},
		}},
		{ID: "cart-1002", UserID: "1-1", Status: "archived", Items: []cartItemSeed{
			{Code: "OLE-900", Quantity: 12},
		}},
		{ID: "cart-1003", UserID: "1-2", Status: "active", Items: []cartItemSeed{
			{Code: "ARZ-5", Quantity: 1},
		}},
	}
	for _, c := range carts {
		if err := upsertCart(ctx, pool, clientID, c, products, productIDs); err != nil {
			return fmt.Errorf("upsert cart %s: %w", c.ID, err)
		}
	}

	return nil
}

func ensureClient(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	const q = `
INSERT INTO clients (id, trade_name, legal_name, document, email, phone, region)
VALUES ('1', 'Mercado Central', 'Mercado Central LTDA', '11222333000144', 'compras@mercadocentral.test', '+55 11 4002-8922', 'SP')
ON CONFLICT (document) DO UPDATE SET trade_name = EXCLUDED.trade_name
RETURNING id
`
	var id string
	if err := pool.QueryRow(ctx, q).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureDistributor(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	const q = `
INSERT INTO distributors (name, cnpj, state, minimum_order_cents)
VALUES ('Atacado Boa Vista', '99888777000166', 'SP', 50000)
ON CONFLICT (cnpj) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, distributorID string, p productSeed) (string, error) {
	const q = `
INSERT INTO products (distributor_id, code, name, price_cents, unit)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, price_cents = EXCLUDED.price_cents, unit = EXCLUDED.unit
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, distributorID, p.Code, p.Name, p.PriceCents, p.Unit).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertCart(ctx context.Context, pool *pgxpool.Pool, clientID string, c cartSeed, catalog []productSeed, productIDs map[string]string) error {
	prices := make(map[string]productSeed, len(catalog))
	for _, p := range catalog {
		prices[p.Code] = p
	}

	var totalItems int
	var totalCents int64
	for _, item := range c.Items {
		totalItems += item.Quantity
		totalCents += prices[item.Code].PriceCents * int64(item.Quantity)
	}

	if _, err := pool.Exec(ctx, `
INSERT INTO carts (id, client_id, user_id, status, total_items, total_cents)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET total_items = EXCLUDED.total_items, total_cents = EXCLUDED.total_cents
`, c.ID, clientID, c.UserID, c.Status, totalItems, totalCents); err != nil {
		return err
	}

	// Items are replaced wholesale; simpler than diffing for demo data.
	if _, err := pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, c.ID); err != nil {
		return err
	}
	for i, item := range c.Items {
		p := prices[item.Code]
		if _, err := pool.Exec(ctx, `
INSERT INTO cart_items (cart_id, product_id, product_name, product_code, quantity, unit_price_cents, total_cents, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, c.ID, productIDs[item.Code], p.Name, item.Code, item.Quantity, p.PriceCents, p.PriceCents*int64(item.Quantity), i+1); err != nil {
			return err
		}
	}
	return nil
}
