package domain

import "strings"

// Address is a shipping location owned by exactly one client. The type
// tag ("residential", "commercial", ...) is a selection key, not unique:
// a client may hold several addresses of the same type.
type Address struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"clientId"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	AddressType string `json:"addressType"`
}

// NewAddress builds an unpersisted address. Fields are trimmed and the
// type tag lower-cased so lookups by type compare canonically.
func NewAddress(clientID int64, street, city, state, zip, addressType string) *Address {
	return &Address{
		ID:          UnassignedID,
		ClientID:    clientID,
		Street:      strings.TrimSpace(street),
		City:        strings.TrimSpace(city),
		State:       strings.TrimSpace(state),
		Zip:         strings.TrimSpace(zip),
		AddressType: strings.ToLower(strings.TrimSpace(addressType)),
	}
}

// ReconstructAddress rebuilds an address from a stored row.
func ReconstructAddress(id, clientID int64, street, city, state, zip, addressType string) *Address {
	a := NewAddress(clientID, street, city, state, zip, addressType)
	a.ID = id
	return a
}

func (a *Address) SetStreet(street string) {
	a.Street = strings.TrimSpace(street)
}

func (a *Address) SetCity(city string) {
	a.City = strings.TrimSpace(city)
}

func (a *Address) SetState(state string) {
	a.State = strings.TrimSpace(state)
}

func (a *Address) SetZip(zip string) {
	a.Zip = strings.TrimSpace(zip)
}

func (a *Address) SetAddressType(addressType string) {
	a.AddressType = strings.ToLower(strings.TrimSpace(addressType))
}

// IsType reports whether the address matches the given type tag,
// ignoring case and surrounding whitespace.
func (a *Address) IsType(addressType string) bool {
	return a.AddressType == strings.ToLower(strings.TrimSpace(addressType))
}
