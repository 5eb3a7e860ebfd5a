package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backoffice-api/internal/domain"
	orderrepo "backoffice-api/internal/repository/order"
	"github.com/google/uuid"
)

type Service struct {
	repo        orderRepo
	productRepo productRepo
}

type orderRepo interface {
	List(ctx context.Context, f orderrepo.ListFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo orderrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, productRepo: products}
}

type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateInput struct {
	ClientID string      `json:"clientId"`
	UserID   string      `json:"userId"`
	Items    []ItemInput `json:"items"`
}

func (s *Service) List(ctx context.Context, clientID string, status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !domain.KnownOrderStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	return s.repo.List(ctx, orderrepo.ListFilter{
		ClientID: strings.TrimSpace(clientID),
		Status:   status,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Create prices each line from the current product catalog and books the
// order as pending. Product snapshots (name, code, unit price) are copied
// onto the order so later catalog edits do not rewrite history.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return nil, errors.New("clientId required")
	}
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return nil, errors.New("userId required")
	}
	if len(in.Items) == 0 {
		return nil, errors.New("items required")
	}

	order := domain.Order{
		Number:   "ORD-" + uuid.NewString()[:8],
		ClientID: clientID,
		UserID:   userID,
		Status:   domain.OrderStatusPending,
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, errors.New("quantity must be at least 1")
		}
		p, err := s.productRepo.GetByID(ctx, strings.TrimSpace(item.ProductID))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("product %s not found", item.ProductID)
			}
			return nil, err
		}
		if !p.Active {
			return nil, fmt.Errorf("product %s is inactive", p.Code)
		}
		total := p.PriceCents * int64(item.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:      p.ID,
			ProductName:    p.Name,
			ProductCode:    p.Code,
			Quantity:       item.Quantity,
			UnitPriceCents: p.PriceCents,
			TotalCents:     total,
		})
		order.TotalCents += total
	}

	return s.repo.Create(ctx, order)
}

// UpdateStatus moves the order along the workflow. Delivered and cancelled
// are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.KnownOrderStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.OrderStatusDelivered || current.Status == domain.OrderStatusCancelled {
		return nil, fmt.Errorf("order is %s and can no longer change", current.Status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
