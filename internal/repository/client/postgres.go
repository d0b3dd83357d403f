package client

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

// NewPostgres returns a Repository backed by Postgres. The pool is
// shared with the other adapters; its lifetime belongs to the caller.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	const q = `
INSERT INTO clients (name, email, cpf, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, cpf, created_at
`
	res, err := scanClient(r.pool.QueryRow(ctx, q, c.Name, c.Email, c.CPF, c.CreatedAt))
	if err != nil {
		r.logger.Printf("client repo: create cpf=%s error=%v", c.CPF, err)
		return nil, translate("create client", err)
	}
	r.logger.Printf("client repo: created id=%d cpf=%s", res.ID, res.CPF)
	return res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	const q = `
SELECT id, name, email, cpf, created_at
FROM clients
WHERE id = $1
`
	res, err := scanClient(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, translate("get client by id", err)
	}
	return res, nil
}

func (r *postgresRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	const q = `
SELECT id, name, email, cpf, created_at
FROM clients
WHERE cpf = $1
LIMIT 1
`
	res, err := scanClient(r.pool.QueryRow(ctx, q, cpf))
	if err != nil {
		return nil, translate("get client by cpf", err)
	}
	return res, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	const q = `
SELECT id, name, email, cpf, created_at
FROM clients
WHERE lower(email) = lower($1)
LIMIT 1
`
	res, err := scanClient(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		return nil, translate("get client by email", err)
	}
	return res, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Client, error) {
	const q = `
SELECT id, name, email, cpf, created_at
FROM clients
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("client repo: list error=%v", err)
		return nil, translate("list clients", err)
	}
	defer rows.Close()

	var result []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, translate("list clients", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list clients", err)
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Client) error {
	const q = `
UPDATE clients
SET name = $2, email = $3, cpf = $4
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, c.ID, c.Name, c.Email, c.CPF)
	if err != nil {
		r.logger.Printf("client repo: update id=%d error=%v", c.ID, err)
		return translate("update client", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("client repo: delete id=%d error=%v", id, err)
		return translate("delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var (
		id               int64
		name, email, cpf string
		createdAt        time.Time
	)
	if err := row.Scan(&id, &name, &email, &cpf, &createdAt); err != nil {
		return nil, err
	}
	return domain.ReconstructClient(id, name, email, cpf, createdAt), nil
}

// translate maps driver errors to the domain taxonomy. No raw pgx error
// leaves the repository packages.
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
