package client

import (
	"context"

	"backoffice-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context, query string) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c domain.Client) (*domain.Client, error)
	Upsert(ctx context.Context, c domain.Client) (*domain.Client, error)
	ListUsers(ctx context.Context, clientID string) ([]domain.ClientUser, error)
}
