package address

import (
	"context"

	"commerce-backoffice/internal/domain"
)

// Repository persists and fetches client addresses. ListByClient returns
// rows in id order, which is the tie-break order the order workflow
// relies on when a client holds several addresses of one type.
type Repository interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error)
	Update(ctx context.Context, a domain.Address) error
	Delete(ctx context.Context, id int64) error
}
