package product

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

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, description, price_cents, stock_quantity, created_at)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
RETURNING id, sku, name, COALESCE(description, ''), price_cents, stock_quantity, created_at
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q, p.SKU, p.Name, p.Description, p.PriceCents, p.StockQuantity, p.CreatedAt))
	if err != nil {
		r.logger.Printf("product repo: create sku=%s error=%v", p.SKU, err)
		return nil, translate("create product", err)
	}
	r.logger.Printf("product repo: created id=%d sku=%s", res.ID, res.SKU)
	return res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, sku, name, COALESCE(description, ''), price_cents, stock_quantity, created_at
FROM products
WHERE id = $1
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, translate("get product by id", err)
	}
	return res, nil
}

func (r *postgresRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	const q = `
SELECT id, sku, name, COALESCE(description, ''), price_cents, stock_quantity, created_at
FROM products
WHERE sku = $1
LIMIT 1
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q, sku))
	if err != nil {
		return nil, translate("get product by sku", err)
	}
	return res, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, sku, name, COALESCE(description, ''), price_cents, stock_quantity, created_at
FROM products
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, translate("list products", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, translate("list products", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list products", err)
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) error {
	const q = `
UPDATE products
SET sku = $2, name = $3, description = NULLIF($4, ''), price_cents = $5, stock_quantity = $6
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, p.ID, p.SKU, p.Name, p.Description, p.PriceCents, p.StockQuantity)
	if err != nil {
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return translate("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return translate("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		id, priceCents  int64
		sku, name, desc string
		stockQuantity   int
		createdAt       time.Time
	)
	if err := row.Scan(&id, &sku, &name, &desc, &priceCents, &stockQuantity, &createdAt); err != nil {
		return nil, err
	}
	return domain.ReconstructProduct(id, sku, name, desc, priceCents, stockQuantity, createdAt), nil
}

func translate(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyExists
	}
	return &domain.StorageError{Op: op, Err: err}
}
