package domain

import (
	"strings"
	"time"
)

// Product is a catalog item identified by a unique sku. Prices are
// integer cents. StockQuantity is informational: order creation never
// decrements it.
type Product struct {
	ID            int64     `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PriceCents    int64     `json:"priceCents"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewProduct builds an unpersisted product. Price and stock must not be
// negative.
func NewProduct(sku, name, description string, priceCents int64, stockQuantity int) (*Product, error) {
	if priceCents < 0 || stockQuantity < 0 {
		return nil, ErrNegativeAmount
	}
	return &Product{
		ID:            UnassignedID,
		SKU:           strings.TrimSpace(sku),
		Name:          strings.TrimSpace(name),
		Description:   strings.TrimSpace(description),
		PriceCents:    priceCents,
		StockQuantity: stockQuantity,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// ReconstructProduct rebuilds a product from a stored row.
func ReconstructProduct(id int64, sku, name, description string, priceCents int64, stockQuantity int, createdAt time.Time) *Product {
	return &Product{
		ID:            id,
		SKU:           strings.TrimSpace(sku),
		Name:          strings.TrimSpace(name),
		Description:   strings.TrimSpace(description),
		PriceCents:    priceCents,
		StockQuantity: stockQuantity,
		CreatedAt:     createdAt,
	}
}

func (p *Product) SetName(name string) {
	p.Name = strings.TrimSpace(name)
}

func (p *Product) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
}

func (p *Product) SetPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativeAmount
	}
	p.PriceCents = priceCents
	return nil
}

func (p *Product) SetStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrNegativeAmount
	}
	p.StockQuantity = stockQuantity
	return nil
}
