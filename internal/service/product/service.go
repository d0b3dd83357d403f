package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce-backoffice/internal/domain"
	productrepo "commerce-backoffice/internal/repository/product"
)

// Service handles catalog maintenance.
type Service struct {
	repo productRepo
}

type productRepo interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
}

// New wires the service to its repository.
func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields expected when adding a catalog item.
type CreateInput struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PriceCents    int64  `json:"priceCents"`
	StockQuantity int    `json:"stockQuantity"`
}

// Create adds a product after checking the sku is free.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.SKU) == "" {
		return nil, fmt.Errorf("sku required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name required: %w", domain.ErrInvalidInput)
	}

	p, err := domain.NewProduct(in.SKU, in.Name, in.Description, in.PriceCents, in.StockQuantity)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySKU(ctx, p.SKU); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check sku: %w", err)
	}

	return s.repo.Create(ctx, *p)
}

// Get fetches one product by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetBySKU fetches one product by its catalog code.
func (s *Service) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	p, err := s.repo.GetBySKU(ctx, strings.TrimSpace(sku))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// List fetches the whole catalog.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// UpdatePrice changes a product's price. Existing orders keep their
// snapshot; only future orders see the new value.
func (s *Service) UpdatePrice(ctx context.Context, id, priceCents int64) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.SetPriceCents(priceCents); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStock sets the informational stock counter.
func (s *Service) UpdateStock(ctx context.Context, id int64, stockQuantity int) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.SetStockQuantity(stockQuantity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}
