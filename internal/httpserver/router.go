package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"backoffice-api/internal/domain"
	clientsvc "backoffice-api/internal/service/client"
	distributorsvc "backoffice-api/internal/service/distributor"
	ordersvc "backoffice-api/internal/service/order"
	productsvc "backoffice-api/internal/service/product"
	ticketsvc "backoffice-api/internal/service/ticket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartService covers the cart lifecycle operations the API exposes.
type CartService interface {
	List(ctx context.Context, clientID, userID string) ([]domain.Cart, error)
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Restore(ctx context.Context, id string) (*domain.Cart, error)
}

type ClientService interface {
	List(ctx context.Context, query string) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, in clientsvc.Input) (*domain.Client, error)
	Update(ctx context.Context, id string, in clientsvc.Input) (*domain.Client, error)
	ListUsers(ctx context.Context, clientID string) ([]domain.ClientUser, error)
}

type DistributorService interface {
	List(ctx context.Context) ([]domain.Distributor, error)
	Get(ctx context.Context, id string) (*domain.Distributor, error)
	Create(ctx context.Context, in distributorsvc.Input) (*domain.Distributor, error)
	Update(ctx context.Context, id string, in distributorsvc.Input) (*domain.Distributor, error)
}

type ProductService interface {
	List(ctx context.Context, distributorID, query string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.Input) (*domain.Product, error)
}

type OrderService interface {
	List(ctx context.Context, clientID string, status domain.OrderStatus) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type TicketService interface {
	List(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	Create(ctx context.Context, in ticketsvc.Input) (*domain.Ticket, error)
	Update(ctx context.Context, id string, in ticketsvc.Input) (*domain.Ticket, error)
	AddComment(ctx context.Context, ticketID string, in ticketsvc.CommentInput) (*domain.TicketComment, error)
}

// Deps collects the services the router needs.
type Deps struct {
	CartSvc        CartService
	ClientSvc      ClientService
	DistributorSvc DistributorService
	ProductSvc     ProductService
	OrderSvc       OrderService
	TicketSvc      TicketService
}

func (d Deps) validate() error {
	switch {
	case d.CartSvc == nil:
		return errors.New("cart service is required")
	case d.ClientSvc == nil:
		return errors.New("client service is required")
	case d.DistributorSvc == nil:
		return errors.New("distributor service is required")
	case d.ProductSvc == nil:
		return errors.New("product service is required")
	case d.OrderSvc == nil:
		return errors.New("order service is required")
	case d.TicketSvc == nil:
		return errors.New("ticket service is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, corsOrigins []string, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	carts := router.Group("/carts")
	{
		carts.GET("", listCartsHandler(deps.CartSvc))
		carts.GET("/:cartID", getCartHandler(deps.CartSvc))
		carts.POST("/:cartID/restore", restoreCartHandler(deps.CartSvc, logger))
	}

	clients := router.Group("/clients")
	{
		clients.GET("", listClientsHandler(deps.ClientSvc))
		clients.GET("/:clientID", getClientHandler(deps.ClientSvc))
		clients.POST("", createClientHandler(deps.ClientSvc))
		clients.PUT("/:clientID", updateClientHandler(deps.ClientSvc))
		clients.GET("/:clientID/users", listClientUsersHandler(deps.ClientSvc))
	}

	distributors := router.Group("/distributors")
	{
		distributors.GET("", listDistributorsHandler(deps.DistributorSvc))
		distributors.GET("/:distributorID", getDistributorHandler(deps.DistributorSvc))
		distributors.POST("", createDistributorHandler(deps.DistributorSvc))
		distributors.PUT("/:distributorID", updateDistributorHandler(deps.DistributorSvc))
	}

	products := router.Group("/products")
	{
		products.GET("", listProductsHandler(deps.ProductSvc))
		products.GET("/:productID", getProductHandler(deps.ProductSvc))
		products.POST("", createProductHandler(deps.ProductSvc))
		products.PUT("/:productID", updateProductHandler(deps.ProductSvc))
	}

	orders := router.Group("/orders")
	{
		orders.GET("", listOrdersHandler(deps.OrderSvc))
		orders.GET("/:orderID", getOrderHandler(deps.OrderSvc))
		orders.POST("", createOrderHandler(deps.OrderSvc))
		orders.PATCH("/:orderID/status", updateOrderStatusHandler(deps.OrderSvc))
	}

	tickets := router.Group("/tickets")
	{
		tickets.GET("", listTicketsHandler(deps.TicketSvc))
		tickets.GET("/:ticketID", getTicketHandler(deps.TicketSvc))
		tickets.POST("", createTicketHandler(deps.TicketSvc))
		tickets.PUT("/:ticketID", updateTicketHandler(deps.TicketSvc))
		tickets.POST("/:ticketID/comments", addTicketCommentHandler(deps.TicketSvc))
	}

	return router, nil
}
