package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"commerce-backoffice/internal/config"
	"commerce-backoffice/internal/db"
	"commerce-backoffice/internal/httpserver"
	addressrepo "commerce-backoffice/internal/repository/address"
	clientrepo "commerce-backoffice/internal/repository/client"
	orderrepo "commerce-backoffice/internal/repository/order"
	productrepo "commerce-backoffice/internal/repository/product"
	clientsvc "commerce-backoffice/internal/service/client"
	ordersvc "commerce-backoffice/internal/service/order"
	productsvc "commerce-backoffice/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	clientRepo := clientrepo.NewPostgres(dbpool, logger)
	addressRepo := addressrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	clientService := clientsvc.New(clientRepo, addressRepo)
	productService := productsvc.New(productRepo)
	orderService := ordersvc.New(clientRepo, productRepo, addressRepo, orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ClientSvc:  clientService,
		ProductSvc: productService,
		OrderSvc:   orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
