package order

import (
	"context"

	"backoffice-api/internal/domain"
)

type ListFilter struct {
	ClientID string
	Status   domain.OrderStatus
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
