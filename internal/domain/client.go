package domain

import (
	"strings"
	"time"
)

// UnassignedID marks an entity that has not been persisted yet. Storage
// assigns the real id on create and it never changes afterwards.
const UnassignedID int64 = -1

// Client is a registered buyer identified by a unique cpf tax id.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewClient builds an unpersisted client. String fields are trimmed and
// the email lower-cased; the same normalization applies on every setter.
func NewClient(name, email, cpf string) *Client {
	return &Client{
		ID:        UnassignedID,
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CPF:       strings.TrimSpace(cpf),
		CreatedAt: time.Now().UTC(),
	}
}

// ReconstructClient rebuilds a client from a stored row.
func ReconstructClient(id int64, name, email, cpf string, createdAt time.Time) *Client {
	return &Client{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CPF:       strings.TrimSpace(cpf),
		CreatedAt: createdAt,
	}
}

func (c *Client) SetName(name string) {
	c.Name = strings.TrimSpace(name)
}

func (c *Client) SetEmail(email string) {
	c.Email = strings.ToLower(strings.TrimSpace(email))
}

// SetCPF sets the tax id. A non-empty cpf is immutable.
func (c *Client) SetCPF(cpf string) error {
	cpf = strings.TrimSpace(cpf)
	if c.CPF != "" && c.CPF != cpf {
		return ErrImmutableCPF
	}
	c.CPF = cpf
	return nil
}

// Persisted reports whether storage has assigned an id.
func (c *Client) Persisted() bool { return c.ID != UnassignedID }
