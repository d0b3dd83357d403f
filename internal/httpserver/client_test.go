package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"commerce-backoffice/internal/domain"
	clientsvc "commerce-backoffice/internal/service/client"
	productsvc "commerce-backoffice/internal/service/product"
	"github.com/gin-gonic/gin"
)

func clientTestRouter(t *testing.T, svc *stubClientService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, Deps{
		ClientSvc:  svc,
		ProductSvc: &stubProductService{},
		OrderSvc:   &stubOrderService{},
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestCreateClientHandler_Created(t *testing.T) {
	svc := &stubClientService{
		client: domain.ReconstructClient(1, "Maria Silva", "maria@example.com", "111.111.111-11", time.Now()),
	}
	router := clientTestRouter(t, svc)

	body := `{"name":"Maria Silva","email":"maria@example.com","cpf":"111.111.111-11"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"cpf":"111.111.111-11"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateClientHandler_Conflict(t *testing.T) {
	router := clientTestRouter(t, &stubClientService{err: domain.ErrAlreadyExists})

	body := `{"name":"Maria","email":"maria@example.com","cpf":"111.111.111-11"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

// These two go through the real services: a missing required field must
// surface as 400 InvalidInput, never 500. Validation fires before any
// repository access, so the services run with nil repositories.
func TestCreateClientHandler_MissingFieldBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, Deps{
		ClientSvc:  clientsvc.New(nil, nil),
		ProductSvc: &stubProductService{},
		OrderSvc:   &stubOrderService{},
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"email":"maria@example.com","cpf":"111.111.111-11"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "InvalidInput") {
		t.Fatalf("expected InvalidInput code, got %s", rec.Body.String())
	}
}

func TestCreateProductHandler_MissingSKUBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, Deps{
		ClientSvc:  &stubClientService{},
		ProductSvc: productsvc.New(nil),
		OrderSvc:   &stubOrderService{},
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"name":"Demo T-Shirt","priceCents":1999}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "InvalidInput") {
		t.Fatalf("expected InvalidInput code, got %s", rec.Body.String())
	}
}

func TestGetClientHandler_NotFound(t *testing.T) {
	router := clientTestRouter(t, &stubClientService{err: domain.ErrClientNotFound})

	req := httptest.NewRequest(http.MethodGet, "/clients/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ClientNotFound") {
		t.Fatalf("expected ClientNotFound code, got %s", rec.Body.String())
	}
}
