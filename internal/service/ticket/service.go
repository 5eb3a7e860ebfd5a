package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backoffice-api/internal/domain"
	ticketrepo "backoffice-api/internal/repository/ticket"
	"github.com/google/uuid"
)

type Service struct {
	repo ticketRepo
}

type ticketRepo interface {
	List(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error)
	Update(ctx context.Context, t domain.Ticket) (*domain.Ticket, error)
	AddComment(ctx context.Context, c domain.TicketComment) (*domain.TicketComment, error)
}

func New(repo ticketrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	ClientID string   `json:"clientId"`
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
	Owner    string   `json:"owner"`
}

type CommentInput struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

func (s *Service) List(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	if status != "" && !domain.KnownTicketStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	return s.repo.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Ticket, error) {
	t, err := s.ticketFromInput(in)
	if err != nil {
		return nil, err
	}
	if t.Status == "" {
		t.Status = domain.TicketStatusOpen
	}
	t.ID = "TCK-" + uuid.NewString()[:8]
	return s.repo.Create(ctx, t)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Ticket, error) {
	t, err := s.ticketFromInput(in)
	if err != nil {
		return nil, err
	}
	if t.Status == "" {
		return nil, errors.New("status required")
	}
	t.ID = id
	return s.repo.Update(ctx, t)
}

// AddComment appends a comment; the ticket must exist.
func (s *Service) AddComment(ctx context.Context, ticketID string, in CommentInput) (*domain.TicketComment, error) {
	author := strings.TrimSpace(in.Author)
	if author == "" {
		return nil, errors.New("author required")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, errors.New("body required")
	}
	if _, err := s.repo.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}
	return s.repo.AddComment(ctx, domain.TicketComment{
		TicketID: ticketID,
		Author:   author,
		Body:     body,
	})
}

func (s *Service) ticketFromInput(in Input) (domain.Ticket, error) {
	t := domain.Ticket{
		ClientID: strings.TrimSpace(in.ClientID),
		Subject:  strings.TrimSpace(in.Subject),
		Body:     strings.TrimSpace(in.Body),
		Status:   domain.TicketStatus(strings.TrimSpace(in.Status)),
		Tags:     normalizeTags(in.Tags),
		Owner:    strings.TrimSpace(in.Owner),
	}
	if t.ClientID == "" {
		return t, errors.New("clientId required")
	}
	if t.Subject == "" {
		return t, errors.New("subject required")
	}
	if t.Status != "" && !domain.KnownTicketStatus(t.Status) {
		return t, fmt.Errorf("unknown status %q", t.Status)
	}
	return t, nil
}

// normalizeTags trims, lowercases and dedupes while keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
