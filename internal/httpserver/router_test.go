package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice-api/internal/domain"
	clientsvc "backoffice-api/internal/service/client"
	distributorsvc "backoffice-api/internal/service/distributor"
	ordersvc "backoffice-api/internal/service/order"
	productsvc "backoffice-api/internal/service/product"
	ticketsvc "backoffice-api/internal/service/ticket"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCartService struct {
	carts      []domain.Cart
	listErr    error
	cart       *domain.Cart
	getErr     error
	restored   *domain.Cart
	restoreErr error
	lastList   [2]string
	lastID     string
}

func (s *stubCartService) List(_ context.Context, clientID, userID string) ([]domain.Cart, error) {
	s.lastList = [2]string{clientID, userID}
	return s.carts, s.listErr
}

func (s *stubCartService) Get(_ context.Context, id string) (*domain.Cart, error) {
	s.lastID = id
	return s.cart, s.getErr
}

func (s *stubCartService) Restore(_ context.Context, id string) (*domain.Cart, error) {
	s.lastID = id
	return s.restored, s.restoreErr
}

type stubClientService struct {
	clients []domain.Client
	client  *domain.Client
	users   []domain.ClientUser
	err     error
}

func (s *stubClientService) List(_ context.Context, _ string) ([]domain.Client, error) {
	return s.clients, s.err
}

func (s *stubClientService) Get(_ context.Context, _ string) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubClientService) Create(_ context.Context, _ clientsvc.Input) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubClientService) Update(_ context.Context, _ string, _ clientsvc.Input) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubClientService) ListUsers(_ context.Context, _ string) ([]domain.ClientUser, error) {
	return s.users, s.err
}

type stubDistributorService struct {
	distributors []domain.Distributor
	distributor  *domain.Distributor
	err          error
}

func (s *stubDistributorService) List(_ context.Context) ([]domain.Distributor, error) {
	return s.distributors, s.err
}

func (s *stubDistributorService) Get(_ context.Context, _ string) (*domain.Distributor, error) {
	return s.distributor, s.err
}

func (s *stubDistributorService) Create(_ context.Context, _ distributorsvc.Input) (*domain.Distributor, error) {
	return s.distributor, s.err
}

func (s *stubDistributorService) Update(_ context.Context, _ string, _ distributorsvc.Input) (*domain.Distributor, error) {
	return s.distributor, s.err
}

type stubProductService struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubProductService) List(_ context.Context, _, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Update(_ context.Context, _ string, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

type stubOrderService struct {
	orders []domain.Order
	order  *domain.Order
	err    error
}

func (s *stubOrderService) List(_ context.Context, _ string, _ domain.OrderStatus) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) Get(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Create(_ context.Context, _ ordersvc.CreateInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) UpdateStatus(_ context.Context, _ string, _ domain.OrderStatus) (*domain.Order, error) {
	return s.order, s.err
}

type stubTicketService struct {
	tickets []domain.Ticket
	ticket  *domain.Ticket
	comment *domain.TicketComment
	err     error
}

func (s *stubTicketService) List(_ context.Context, _ domain.TicketStatus) ([]domain.Ticket, error) {
	return s.tickets, s.err
}

func (s *stubTicketService) Get(_ context.Context, _ string) (*domain.Ticket, error) {
	return s.ticket, s.err
}

func (s *stubTicketService) Create(_ context.Context, _ ticketsvc.Input) (*domain.Ticket, error) {
	return s.ticket, s.err
}

func (s *stubTicketService) Update(_ context.Context, _ string, _ ticketsvc.Input) (*domain.Ticket, error) {
	return s.ticket, s.err
}

func (s *stubTicketService) AddComment(_ context.Context, _ string, _ ticketsvc.CommentInput) (*domain.TicketComment, error) {
	return s.comment, s.err
}

func testDeps() Deps {
	return Deps{
		CartSvc:        &stubCartService{},
		ClientSvc:      &stubClientService{},
		DistributorSvc: &stubDistributorService{},
		ProductSvc:     &stubProductService{},
		OrderSvc:       &stubOrderService{},
		TicketSvc:      &stubTicketService{},
	}
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, []string{"http://localhost:3000"}, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestBuildRouterMissingService(t *testing.T) {
	deps := testDeps()
	deps.CartSvc = nil
	_, err := buildRouter(logDiscard(), nil, nil, deps)
	if err == nil {
		t.Fatalf("expected error for missing cart service")
	}
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
