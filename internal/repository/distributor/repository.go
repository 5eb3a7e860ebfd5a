package distributor

import (
	"context"

	"backoffice-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Distributor, error)
	GetByID(ctx context.Context, id string) (*domain.Distributor, error)
	Create(ctx context.Context, d domain.Distributor) (*domain.Distributor, error)
	Update(ctx context.Context, d domain.Distributor) (*domain.Distributor, error)
}
