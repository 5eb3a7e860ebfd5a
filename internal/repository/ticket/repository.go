package ticket

import (
	"context"

	"backoffice-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error)
	Update(ctx context.Context, t domain.Ticket) (*domain.Ticket, error)
	AddComment(ctx context.Context, c domain.TicketComment) (*domain.TicketComment, error)
}
