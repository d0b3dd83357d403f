package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce-backoffice/internal/domain"
)

type stubRepo struct {
	bySKU      *domain.Product
	bySKUErr   error
	byID       *domain.Product
	byIDErr    error
	createErr  error
	updateErr  error
	lastCreate domain.Product
	lastUpdate domain.Product
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.lastCreate = p
	if s.createErr != nil {
		return nil, s.createErr
	}
	persisted := p
	persisted.ID = 3
	return &persisted, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.byID, s.byIDErr
}

func (s *stubRepo) GetBySKU(_ context.Context, _ string) (*domain.Product, error) {
	return s.bySKU, s.bySKUErr
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubRepo) Update(_ context.Context, p domain.Product) error {
	s.lastUpdate = p
	return s.updateErr
}

func TestCreateHappyPath(t *testing.T) {
	repo := &stubRepo{bySKUErr: domain.ErrNotFound}
	svc := &Service{repo: repo}

	got, err := svc.Create(context.Background(), CreateInput{
		SKU: " SKU-1 ", Name: "Demo T-Shirt", PriceCents: 1999, StockQuantity: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 3 || got.SKU != "SKU-1" || got.PriceCents != 1999 {
		t.Fatalf("unexpected product %+v", got)
	}
}

func TestCreateRejectsTakenSKU(t *testing.T) {
	existing := domain.ReconstructProduct(3, "SKU-1", "Demo T-Shirt", "", 1999, 10, time.Now())
	svc := &Service{repo: &stubRepo{bySKU: existing}}

	_, err := svc.Create(context.Background(), CreateInput{SKU: "SKU-1", Name: "Other", PriceCents: 100})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{bySKUErr: domain.ErrNotFound}}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Tee", PriceCents: 100}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing sku, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{SKU: "SKU-1", PriceCents: 100}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc := &Service{repo: &stubRepo{bySKUErr: domain.ErrNotFound}}
	_, err := svc.Create(context.Background(), CreateInput{SKU: "SKU-1", Name: "Tee", PriceCents: -1})
	if !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestGetBySKUMapsNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{bySKUErr: domain.ErrNotFound}}
	if _, err := svc.GetBySKU(context.Background(), "SKU-X"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdatePrice(t *testing.T) {
	existing := domain.ReconstructProduct(3, "SKU-1", "Demo T-Shirt", "", 1999, 10, time.Now())
	repo := &stubRepo{byID: existing}
	svc := &Service{repo: repo}

	got, err := svc.UpdatePrice(context.Background(), 3, 2999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PriceCents != 2999 || repo.lastUpdate.PriceCents != 2999 {
		t.Fatalf("price not updated: %+v", repo.lastUpdate)
	}

	if _, err := svc.UpdatePrice(context.Background(), 3, -5); !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}
