package client

import (
	"context"

	"commerce-backoffice/internal/domain"
)

// Repository persists and fetches clients. Absence is reported as
// domain.ErrNotFound; driver failures arrive wrapped in
// domain.StorageError.
type Repository interface {
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, c domain.Client) error
	Delete(ctx context.Context, id int64) error
}
