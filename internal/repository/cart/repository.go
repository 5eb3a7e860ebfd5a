package cart

import (
	"context"

	"backoffice-api/internal/domain"
)

// Repository stores cart records. Restore is deliberately a single primitive
// rather than separate archive/activate steps: the store is responsible for
// making the swap atomic so the one-active-cart-per-(client,user) rule can
// never be observed broken.
type Repository interface {
	ListByClient(ctx context.Context, clientID, userID string) ([]domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Restore(ctx context.Context, id string) (*domain.Cart, error)
}
