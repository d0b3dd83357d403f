package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"commerce-backoffice/internal/domain"
	clientsvc "commerce-backoffice/internal/service/client"
	ordersvc "commerce-backoffice/internal/service/order"
	productsvc "commerce-backoffice/internal/service/product"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubClientService struct {
	client    *domain.Client
	addresses []domain.Address
	err       error
}

func (s *stubClientService) Register(_ context.Context, _ clientsvc.RegisterInput) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubClientService) Get(_ context.Context, _ int64) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubClientService) List(_ context.Context) ([]domain.Client, error) {
	if s.client == nil {
		return nil, s.err
	}
	return []domain.Client{*s.client}, s.err
}

func (s *stubClientService) Update(_ context.Context, _ int64, _ clientsvc.UpdateInput) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubClientService) AddAddress(_ context.Context, _ int64, _ clientsvc.AddressInput) (*domain.Address, error) {
	if len(s.addresses) > 0 {
		return &s.addresses[0], s.err
	}
	return nil, s.err
}

func (s *stubClientService) ListAddresses(_ context.Context, _ int64) ([]domain.Address, error) {
	return s.addresses, s.err
}

type stubProductService struct {
	product *domain.Product
	err     error
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.CreateInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	if s.product == nil {
		return nil, s.err
	}
	return []domain.Product{*s.product}, s.err
}

func (s *stubProductService) UpdatePrice(_ context.Context, _, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

type stubOrderService struct {
	order     *domain.Order
	err       error
	lastInput ordersvc.CreateInput
}

func (s *stubOrderService) CreateByBusinessKeys(_ context.Context, in ordersvc.CreateInput) (*domain.Order, error) {
	s.lastInput = in
	return s.order, s.err
}

func (s *stubOrderService) Get(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) ListByClient(_ context.Context, _ int64) ([]domain.Order, error) {
	if s.order == nil {
		return nil, s.err
	}
	return []domain.Order{*s.order}, s.err
}

func testRouter(t *testing.T, orderSvc *stubOrderService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, Deps{
		ClientSvc:  &stubClientService{},
		ProductSvc: &stubProductService{},
		OrderSvc:   orderSvc,
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestCreateOrderHandler_Created(t *testing.T) {
	order := domain.ReconstructOrder(42, 7, 3, 5, 3, 1999, time.Now())
	svc := &stubOrderService{order: order}
	router := testRouter(t, svc)

	body := `{"cpf":"111.111.111-11","sku":"SKU-1","addressType":"residential","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"totalCents":5997`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if svc.lastInput.CPF != "111.111.111-11" || svc.lastInput.Quantity != 3 {
		t.Fatalf("unexpected input %+v", svc.lastInput)
	}
}

func TestCreateOrderHandler_NotFoundKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"client", domain.ErrClientNotFound, "ClientNotFound"},
		{"product", domain.ErrProductNotFound, "ProductNotFound"},
		{"address", domain.ErrAddressNotFound, "AddressNotFound"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := testRouter(t, &stubOrderService{err: tc.err})

			body := `{"cpf":"x","sku":"y","addressType":"z","quantity":1}`
			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.code) {
				t.Fatalf("expected code %s in body: %s", tc.code, rec.Body.String())
			}
		})
	}
}

func TestCreateOrderHandler_InvalidQuantity(t *testing.T) {
	router := testRouter(t, &stubOrderService{err: domain.ErrInvalidQuantity})

	body := `{"cpf":"x","sku":"y","addressType":"z","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrderHandler_StorageError(t *testing.T) {
	router := testRouter(t, &stubOrderService{err: &domain.StorageError{Op: "create order", Err: context.DeadlineExceeded}})

	body := `{"cpf":"x","sku":"y","addressType":"z","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGetOrderHandler_BadID(t *testing.T) {
	router := testRouter(t, &stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
