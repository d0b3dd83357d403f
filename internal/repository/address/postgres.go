package address

import (
	"context"
	"errors"
	"io"
	"log"

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

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (client_id, street, city, state, zip, address_type)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, client_id, street, city, state, zip, address_type
`
	res, err := scanAddress(r.pool.QueryRow(ctx, q, a.ClientID, a.Street, a.City, a.State, a.Zip, a.AddressType))
	if err != nil {
		r.logger.Printf("address repo: create client_id=%d error=%v", a.ClientID, err)
		return nil, translate("create address", err)
	}
	return res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const q = `
SELECT id, client_id, street, city, state, zip, address_type
FROM addresses
WHERE id = $1
`
	res, err := scanAddress(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, translate("get address by id", err)
	}
	return res, nil
}

func (r *postgresRepo) ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error) {
	const q = `
SELECT id, client_id, street, city, state, zip, address_type
FROM addresses
WHERE client_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, clientID)
	if err != nil {
		r.logger.Printf("address repo: list client_id=%d error=%v", clientID, err)
		return nil, translate("list addresses", err)
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, translate("list addresses", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list addresses", err)
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, a domain.Address) error {
	const q = `
UPDATE addresses
SET street = $2, city = $3, state = $4, zip = $5, address_type = $6
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, a.ID, a.Street, a.City, a.State, a.Zip, a.AddressType)
	if err != nil {
		r.logger.Printf("address repo: update id=%d error=%v", a.ID, err)
		return translate("update address", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("address repo: delete id=%d error=%v", id, err)
		return translate("delete address", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAddress(row pgx.Row) (*domain.Address, error) {
	var (
		id, clientID                       int64
		street, city, state, zip, addrType string
	)
	if err := row.Scan(&id, &clientID, &street, &city, &state, &zip, &addrType); err != nil {
		return nil, err
	}
	return domain.ReconstructAddress(id, clientID, street, city, state, zip, addrType), nil
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
