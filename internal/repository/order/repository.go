package order

import (
	"context"

	"commerce-backoffice/internal/domain"
)

// Repository persists and fetches orders. Orders are append-mostly:
// the workflow only ever inserts, reads back, and (administratively)
// deletes.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
