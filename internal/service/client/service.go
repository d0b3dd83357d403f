package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce-backoffice/internal/domain"
	addressrepo "commerce-backoffice/internal/repository/address"
	clientrepo "commerce-backoffice/internal/repository/client"
)

// Service handles client registration and address management.
type Service struct {
	repo      clientRepo
	addresses addressRepo
}

type clientRepo interface {
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, c domain.Client) error
}

type addressRepo interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error)
}

// New wires the service to its repositories.
func New(repo clientrepo.Repository, addresses addressrepo.Repository) *Service {
	return &Service{repo: repo, addresses: addresses}
}

// RegisterInput captures fields expected by client registration.
type RegisterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// Register creates a client after checking that neither the cpf nor the
// email is taken. Uniqueness is lookup-before-create here; the storage
// constraints are the backstop for races.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("email required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CPF) == "" {
		return nil, fmt.Errorf("cpf required: %w", domain.ErrInvalidInput)
	}

	c := domain.NewClient(in.Name, in.Email, in.CPF)

	if _, err := s.repo.GetByCPF(ctx, c.CPF); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check cpf: %w", err)
	}
	if _, err := s.repo.GetByEmail(ctx, c.Email); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	return s.repo.Create(ctx, *c)
}

// Get fetches one client by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

// List fetches all clients.
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

// UpdateInput carries mutable client fields. The cpf is not here: it is
// immutable once set.
type UpdateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Update overwrites a client's mutable fields.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Client, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) != "" {
		c.SetName(in.Name)
	}
	if strings.TrimSpace(in.Email) != "" {
		c.SetEmail(in.Email)
	}
	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddressInput mirrors incoming address payloads.
type AddressInput struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	AddressType string `json:"addressType"`
}

// AddAddress attaches a new address to an existing client.
func (s *Service) AddAddress(ctx context.Context, clientID int64, in AddressInput) (*domain.Address, error) {
	if strings.TrimSpace(in.Street) == "" {
		return nil, fmt.Errorf("street required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.AddressType) == "" {
		return nil, fmt.Errorf("addressType required: %w", domain.ErrInvalidInput)
	}
	if _, err := s.Get(ctx, clientID); err != nil {
		return nil, err
	}
	a := domain.NewAddress(clientID, in.Street, in.City, in.State, in.Zip, in.AddressType)
	return s.addresses.Create(ctx, *a)
}

// ListAddresses fetches a client's addresses in storage order.
func (s *Service) ListAddresses(ctx context.Context, clientID int64) ([]domain.Address, error) {
	if _, err := s.Get(ctx, clientID); err != nil {
		return nil, err
	}
	return s.addresses.ListByClient(ctx, clientID)
}
