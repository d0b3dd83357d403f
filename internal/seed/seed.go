package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	SKU           string
	Name          string
	Description   string
	PriceCents    int64
	StockQuantity int
}

// Apply inserts basic seed data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	clientID, err := ensureClient(ctx, pool, "Maria Silva", "maria@example.com", "111.111.111-11")
	if err != nil {
		return fmt.Errorf("ensure client: %w", err)
	}

	if err := ensureAddress(ctx, pool, clientID, "Rua das Flores 100", "Sao Paulo", "SP", "01000-000", "residential"); err != nil {
		return fmt.Errorf("ensure address: %w", err)
	}

	products := []productSeed{
		{
			SKU:           "SKU-1",
			Name:          "Demo T-Shirt",
			Description:   "Soft cotton tee for demo purposes",
			PriceCents:    1999,
			StockQuantity: 50,
		},
		{
			SKU:           "SKU-2",
			Name:          "Demo Mug",
			Description:   "Ceramic mug with demo logo",
			PriceCents:    1299,
			StockQuantity: 25,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func ensureClient(ctx context.Context, pool *pgxpool.Pool, name, email, cpf string) (int64, error) {
	const q = `
INSERT INTO clients (name, email, cpf)
VALUES ($1, $2, $3)
ON CONFLICT (cpf) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, name, email, cpf).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func ensureAddress(ctx context.Context, pool *pgxpool.Pool, clientID int64, street, city, state, zip, addressType string) error {
	const existsQ = `
SELECT EXISTS (
    SELECT 1 FROM addresses WHERE client_id = $1 AND address_type = $2
)
`
	var exists bool
	if err := pool.QueryRow(ctx, existsQ, clientID, addressType).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	const q = `
INSERT INTO addresses (client_id, street, city, state, zip, address_type)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := pool.Exec(ctx, q, clientID, street, city, state, zip, addressType)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (sku, name, description, price_cents, stock_quantity)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock_quantity = EXCLUDED.stock_quantity
`
	_, err := pool.Exec(ctx, q, p.SKU, p.Name, p.Description, p.PriceCents, p.StockQuantity)
	return err
}
