package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backoffice-api/internal/domain"
	orderrepo "backoffice-api/internal/repository/order"
)

type stubRepo struct {
	created    *domain.Order
	createErr  error
	getOrder   *domain.Order
	getErr     error
	updated    *domain.Order
	updateErr  error
	lastCreate domain.Order
	lastStatus domain.OrderStatus
}

func (s *stubRepo) List(_ context.Context, _ orderrepo.ListFilter) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastCreate = o
	return s.created, s.createErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ string, status domain.OrderStatus) (*domain.Order, error) {
	s.lastStatus = status
	return s.updated, s.updateErr
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func TestServiceCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, productRepo: &stubProductRepo{}}

	_, err := svc.Create(context.Background(), CreateInput{UserID: "1-1", Items: []ItemInput{{ProductID: "p1", Quantity: 1}}})
	if err == nil || err.Error() != "clientId required" {
		t.Fatalf("expected clientId error, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{ClientID: "c1", Items: []ItemInput{{ProductID: "p1", Quantity: 1}}})
	if err == nil || err.Error() != "userId required" {
		t.Fatalf("expected userId error, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{ClientID: "c1", UserID: "1-1"})
	if err == nil || err.Error() != "items required" {
		t.Fatalf("expected items error, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{ClientID: "c1", UserID: "1-1", Items: []ItemInput{{ProductID: "p1", Quantity: 0}}})
	if err == nil || err.Error() != "quantity must be at least 1" {
		t.Fatalf("expected quantity error, got %v", err)
	}
}

func TestServiceCreatePricesFromCatalog(t *testing.T) {
	repo := &stubRepo{created: &domain.Order{ID: "o1"}}
	products := &stubProductRepo{products: map[string]*domain.Product{
		"p1": {ID: "p1", Code: "ARZ-5", Name: "Arroz 5kg", PriceCents: 1500, Active: true},
		"p2": {ID: "p2", Code: "FEJ-1", Name: "Feijao 1kg", PriceCents: 800, Active: true},
	}}
	svc := &Service{repo: repo, productRepo: products}

	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		UserID:   "1-1",
		Items:    []ItemInput{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.TotalCents != 2*1500+3*800 {
		t.Fatalf("unexpected total: %d", repo.lastCreate.TotalCents)
	}
	if repo.lastCreate.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", repo.lastCreate.Status)
	}
	if !strings.HasPrefix(repo.lastCreate.Number, "ORD-") {
		t.Fatalf("unexpected order number %q", repo.lastCreate.Number)
	}
	if repo.lastCreate.Items[0].ProductName != "Arroz 5kg" || repo.lastCreate.Items[0].UnitPriceCents != 1500 {
		t.Fatalf("product snapshot missing: %+v", repo.lastCreate.Items[0])
	}
}

func TestServiceCreateUnknownProduct(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, productRepo: &stubProductRepo{}}
	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		UserID:   "1-1",
		Items:    []ItemInput{{ProductID: "ghost", Quantity: 1}},
	})
	if err == nil || err.Error() != "product ghost not found" {
		t.Fatalf("expected product not found, got %v", err)
	}
}

func TestServiceCreateInactiveProduct(t *testing.T) {
	products := &stubProductRepo{products: map[string]*domain.Product{
		"p1": {ID: "p1", Code: "ARZ-5", Name: "Arroz 5kg", PriceCents: 1500, Active: false},
	}}
	svc := &Service{repo: &stubRepo{}, productRepo: products}
	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		UserID:   "1-1",
		Items:    []ItemInput{{ProductID: "p1", Quantity: 1}},
	})
	if err == nil || err.Error() != "product ARZ-5 is inactive" {
		t.Fatalf("expected inactive error, got %v", err)
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	repo := &stubRepo{
		getOrder: &domain.Order{ID: "o1", Status: domain.OrderStatusPending},
		updated:  &domain.Order{ID: "o1", Status: domain.OrderStatusApproved},
	}
	svc := &Service{repo: repo}
	got, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderStatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.OrderStatusApproved {
		t.Fatalf("unexpected status %s", got.Status)
	}
}

func TestServiceUpdateStatusRejectsUnknown(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.UpdateStatus(context.Background(), "o1", "exploded")
	if err == nil || !strings.Contains(err.Error(), "unknown status") {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestServiceUpdateStatusTerminalOrder(t *testing.T) {
	repo := &stubRepo{getOrder: &domain.Order{ID: "o1", Status: domain.OrderStatusCancelled}}
	svc := &Service{repo: repo}
	_, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderStatusApproved)
	if err == nil || !strings.Contains(err.Error(), "can no longer change") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestServiceUpdateStatusNotFound(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	_, err := svc.UpdateStatus(context.Background(), "ghost", domain.OrderStatusApproved)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
