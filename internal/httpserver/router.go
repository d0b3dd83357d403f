package httpserver

import (
	"context"
	"errors"
	"log"

	"commerce-backoffice/internal/domain"
	clientsvc "commerce-backoffice/internal/service/client"
	ordersvc "commerce-backoffice/internal/service/order"
	productsvc "commerce-backoffice/internal/service/product"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientService is what the handlers need from the client service.
type ClientService interface {
	Register(ctx context.Context, in clientsvc.RegisterInput) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id int64, in clientsvc.UpdateInput) (*domain.Client, error)
	AddAddress(ctx context.Context, clientID int64, in clientsvc.AddressInput) (*domain.Address, error)
	ListAddresses(ctx context.Context, clientID int64) ([]domain.Address, error)
}

// ProductService is what the handlers need from the product service.
type ProductService interface {
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	UpdatePrice(ctx context.Context, id, priceCents int64) (*domain.Product, error)
}

// OrderService is what the handlers need from the order workflow.
type OrderService interface {
	CreateByBusinessKeys(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	ClientSvc  ClientService
	ProductSvc ProductService
	OrderSvc   OrderService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.ClientSvc == nil || deps.ProductSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/clients", createClientHandler(deps.ClientSvc))
	router.GET("/clients", listClientsHandler(deps.ClientSvc))
	router.GET("/clients/:id", getClientHandler(deps.ClientSvc))
	router.PUT("/clients/:id", updateClientHandler(deps.ClientSvc))
	router.POST("/clients/:id/addresses", addAddressHandler(deps.ClientSvc))
	router.GET("/clients/:id/addresses", listAddressesHandler(deps.ClientSvc))
	router.GET("/clients/:id/orders", listClientOrdersHandler(deps.OrderSvc))

	router.POST("/products", createProductHandler(deps.ProductSvc))
	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))
	router.PUT("/products/:id/price", updateProductPriceHandler(deps.ProductSvc))

	router.POST("/orders", createOrderHandler(deps.OrderSvc))
	router.GET("/orders/:id", getOrderHandler(deps.OrderSvc))

	return router, nil
}
