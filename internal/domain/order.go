package domain

import (
	"math"
	"time"
)

// Order records a purchase of one product shipped to one address.
// UnitPriceCents is a snapshot of the product price at creation time;
// later price changes never touch existing orders. TotalCents is always
// Quantity * UnitPriceCents — the constructors and the two mutators
// below are the only writers.
type Order struct {
	ID                int64     `json:"id"`
	ClientID          int64     `json:"clientId"`
	ProductID         int64     `json:"productId"`
	ShippingAddressID int64     `json:"shippingAddressId"`
	Quantity          int       `json:"quantity"`
	UnitPriceCents    int64     `json:"unitPriceCents"`
	TotalCents        int64     `json:"totalCents"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewOrder builds an unpersisted order. Quantity below one is rejected.
func NewOrder(clientID, productID, shippingAddressID int64, quantity int, unitPriceCents int64) (*Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return nil, ErrNegativeAmount
	}
	if err := checkTotal(quantity, unitPriceCents); err != nil {
		return nil, err
	}
	o := &Order{
		ID:                UnassignedID,
		ClientID:          clientID,
		ProductID:         productID,
		ShippingAddressID: shippingAddressID,
		Quantity:          quantity,
		UnitPriceCents:    unitPriceCents,
		CreatedAt:         time.Now().UTC(),
	}
	o.recalculateTotal()
	return o, nil
}

// ReconstructOrder rebuilds an order from a stored row. The stored total
// is discarded and recomputed from quantity and unit price.
func ReconstructOrder(id, clientID, productID, shippingAddressID int64, quantity int, unitPriceCents int64, createdAt time.Time) *Order {
	o := &Order{
		ID:                id,
		ClientID:          clientID,
		ProductID:         productID,
		ShippingAddressID: shippingAddressID,
		Quantity:          quantity,
		UnitPriceCents:    unitPriceCents,
		CreatedAt:         createdAt,
	}
	o.recalculateTotal()
	return o
}

func (o *Order) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := checkTotal(quantity, o.UnitPriceCents); err != nil {
		return err
	}
	o.Quantity = quantity
	o.recalculateTotal()
	return nil
}

func (o *Order) SetUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents < 0 {
		return ErrNegativeAmount
	}
	if err := checkTotal(o.Quantity, unitPriceCents); err != nil {
		return err
	}
	o.UnitPriceCents = unitPriceCents
	o.recalculateTotal()
	return nil
}

func (o *Order) recalculateTotal() {
	o.TotalCents = int64(o.Quantity) * o.UnitPriceCents
}

// checkTotal guards the quantity * unitPrice multiplication against
// int64 overflow.
func checkTotal(quantity int, unitPriceCents int64) error {
	if unitPriceCents > 0 && int64(quantity) > math.MaxInt64/unitPriceCents {
		return ErrTotalOverflow
	}
	return nil
}
