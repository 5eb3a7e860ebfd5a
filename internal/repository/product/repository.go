package product

import (
	"context"

	"backoffice-api/internal/domain"
)

// ListFilter narrows List; zero value lists everything.
type ListFilter struct {
	DistributorID string
	Query         string
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
}
