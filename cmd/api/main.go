package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"backoffice-api/internal/config"
	"backoffice-api/internal/db"
	"backoffice-api/internal/httpserver"
	cartrepo "backoffice-api/internal/repository/cart"
	clientrepo "backoffice-api/internal/repository/client"
	distributorrepo "backoffice-api/internal/repository/distributor"
	orderrepo "backoffice-api/internal/repository/order"
	productrepo "backoffice-api/internal/repository/product"
	ticketrepo "backoffice-api/internal/repository/ticket"
	cartsvc "backoffice-api/internal/service/cart"
	clientsvc "backoffice-api/internal/service/client"
	distributorsvc "backoffice-api/internal/service/distributor"
	ordersvc "backoffice-api/internal/service/order"
	productsvc "backoffice-api/internal/service/product"
	ticketsvc "backoffice-api/internal/service/ticket"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	cartRepo := cartrepo.NewPostgres(dbpool)
	clientRepo := clientrepo.NewPostgres(dbpool, logger)
	distributorRepo := distributorrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	ticketRepo := ticketrepo.NewPostgres(dbpool)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, cfg.CORSOrigins, httpserver.Deps{
		CartSvc:        cartsvc.New(cartRepo),
		ClientSvc:      clientsvc.New(clientRepo),
		DistributorSvc: distributorsvc.New(distributorRepo),
		ProductSvc:     productsvc.New(productRepo),
		OrderSvc:       ordersvc.New(orderRepo, productRepo),
		TicketSvc:      ticketsvc.New(ticketRepo),
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
