package cart

import (
	"context"
	"errors"
	"strings"

	"backoffice-api/internal/domain"
	cartrepo "backoffice-api/internal/repository/cart"
)

// Service exposes the cart lifecycle operations: listing a client's cart
// history and restoring an archived cart. Carts are created by shopping
// activity upstream; this service never creates or deletes them.
type Service struct {
	repo cartRepo
}

type cartRepo interface {
	ListByClient(ctx context.Context, clientID, userID string) ([]domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Restore(ctx context.Context, id string) (*domain.Cart, error)
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every cart for the client, optionally narrowed to one of its
// users. An unknown client simply has no carts; that is not an error.
func (s *Service) List(ctx context.Context, clientID, userID string) ([]domain.Cart, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, errors.New("clientId required")
	}
	return s.repo.ListByClient(ctx, clientID, strings.TrimSpace(userID))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Cart, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Restore makes the cart active again. The store archives every sibling of
// the same (client, user) pair in the same atomic step, so after a successful
// call exactly one cart of that pair is active. Restoring an already-active
// cart is a safe no-op apart from the timestamp bump.
func (s *Service) Restore(ctx context.Context, id string) (*domain.Cart, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.Restore(ctx, id)
}
