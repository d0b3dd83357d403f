package order

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"commerce-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (client_id, product_id, shipping_address_id, quantity, unit_price_cents, total_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, client_id, product_id, shipping_address_id, quantity, unit_price_cents, created_at
`
	res, err := scanOrder(r.pool.QueryRow(ctx, q,
		o.ClientID,
		o.ProductID,
		o.ShippingAddressID,
		o.Quantity,
		o.UnitPriceCents,
		o.TotalCents,
		o.CreatedAt,
	))
	if err != nil {
		r.logger.Printf("order repo: create client_id=%d product_id=%d error=%v", o.ClientID, o.ProductID, err)
		return nil, translate("create order", err)
	}
	r.logger.Printf("order repo: created id=%d client_id=%d total_cents=%d", res.ID, res.ClientID, res.TotalCents)
	return res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, client_id, product_id, shipping_address_id, quantity, unit_price_cents, created_at
FROM orders
WHERE id = $1
`
	res, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, translate("get order by id", err)
	}
	return res, nil
}

func (r *postgresRepo) ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error) {
	const q = `
SELECT id, client_id, product_id, shipping_address_id, quantity, unit_price_cents, created_at
FROM orders
WHERE client_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, clientID)
	if err != nil {
		r.logger.Printf("order repo: list client_id=%d error=%v", clientID, err)
		return nil, translate("list orders", err)
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, translate("list orders", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list orders", err)
	}
	return result, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("order repo: delete id=%d error=%v", id, err)
		return translate("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		id, clientID, productID, addressID int64
		quantity                           int
		unitPriceCents                     int64
		createdAt                          time.Time
	)
	if err := row.Scan(&id, &clientID, &productID, &addressID, &quantity, &unitPriceCents, &createdAt); err != nil {
		return nil, err
	}
	// The stored total column exists for SQL consumers; ReconstructOrder
	// recomputes it from quantity and unit price.
	return domain.ReconstructOrder(id, clientID, productID, addressID, quantity, unitPriceCents, createdAt), nil
}

func translate(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		// FK violation: a referenced row vanished between resolution and
		// insert. Surface as absence rather than a storage fault.
		return domain.ErrNotFound
	}
	return &domain.StorageError{Op: op, Err: err}
}
