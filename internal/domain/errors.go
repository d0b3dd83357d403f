package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique business key is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// Per-entity not-found kinds. Each wraps ErrNotFound so callers can
	// match either the specific kind or the general absence.
	ErrClientNotFound  = fmt.Errorf("client: %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product: %w", ErrNotFound)
	ErrAddressNotFound = fmt.Errorf("address: %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order: %w", ErrNotFound)

	// ErrInvalidInput marks caller-correctable validation failures such
	// as missing required fields. Services wrap it with the field name.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidQuantity rejects order quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrTotalOverflow rejects quantity/price combinations whose total
	// cannot be represented in cents.
	ErrTotalOverflow = errors.New("total exceeds representable amount")
	// ErrImmutableCPF rejects changing a cpf that was already set.
	ErrImmutableCPF = errors.New("cpf cannot change once set")
	// ErrNegativeAmount rejects negative prices and stock counts.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// StorageError wraps a driver-level failure (connectivity, constraint,
// timeout) so callers never match on raw pgx errors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
