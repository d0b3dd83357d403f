package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce-backoffice/internal/domain"
	addressrepo "commerce-backoffice/internal/repository/address"
	clientrepo "commerce-backoffice/internal/repository/client"
	orderrepo "commerce-backoffice/internal/repository/order"
	productrepo "commerce-backoffice/internal/repository/product"
)

// Service coordinates the order-creation workflow: resolve a client, a
// product and a shipping address from business keys, snapshot the
// product price, persist exactly one order row. No step before the
// final insert writes anything, so a failure anywhere leaves storage
// untouched.
type Service struct {
	clients   clientRepo
	products  productRepo
	addresses addressRepo
	orders    orderRepo
}

type clientRepo interface {
	GetByCPF(ctx context.Context, cpf string) (*domain.Client, error)
}

type productRepo interface {
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
}

type addressRepo interface {
	ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error)
}

// New wires the service to its repositories.
func New(clients clientrepo.Repository, products productrepo.Repository, addresses addressrepo.Repository, orders orderrepo.Repository) *Service {
	return &Service{clients: clients, products: products, addresses: addresses, orders: orders}
}

// CreateInput carries the business keys identifying who buys what,
// shipped where, and how many.
type CreateInput struct {
	CPF         string `json:"cpf"`
	SKU         string `json:"sku"`
	AddressType string `json:"addressType"`
	Quantity    int    `json:"quantity"`
}

// CreateByBusinessKeys resolves the input keys and persists one order.
// Quantity is checked before anything else so an invalid request never
// reaches storage. Each resolution failure maps to its own error kind;
// the first failure aborts the workflow.
func (s *Service) CreateByBusinessKeys(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	client, err := s.clients.GetByCPF(ctx, strings.TrimSpace(in.CPF))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("resolve client: %w", err)
	}

	product, err := s.products.GetBySKU(ctx, strings.TrimSpace(in.SKU))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	shipping, err := s.resolveAddress(ctx, client.ID, in.AddressType)
	if err != nil {
		return nil, err
	}

	o, err := domain.NewOrder(client.ID, product.ID, shipping.ID, in.Quantity, product.PriceCents)
	if err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, *o)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return created, nil
}

// resolveAddress picks the first of the client's addresses matching the
// requested type, in storage order. When a client holds several
// addresses of one type the oldest row wins; the ordering is a known
// ambiguity kept as-is rather than replaced with a smarter rule.
func (s *Service) resolveAddress(ctx context.Context, clientID int64, addressType string) (*domain.Address, error) {
	addrs, err := s.addresses.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	for i := range addrs {
		if addrs[i].IsType(addressType) {
			return &addrs[i], nil
		}
	}
	return nil, domain.ErrAddressNotFound
}

// Get fetches one order by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListByClient fetches all orders placed by one client.
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error) {
	return s.orders.ListByClient(ctx, clientID)
}
