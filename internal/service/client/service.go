package client

import (
	"context"
	"errors"
	"strings"

	"backoffice-api/internal/domain"
	clientrepo "backoffice-api/internal/repository/client"
)

// Service handles client CRUD for back-office staff.
type Service struct {
	repo clientRepo
}

type clientRepo interface {
	List(ctx context.Context, query string) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c domain.Client) (*domain.Client, error)
	ListUsers(ctx context.Context, clientID string) ([]domain.ClientUser, error)
}

func New(repo clientrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the editable client fields.
type Input struct {
	TradeName string `json:"tradeName"`
	LegalName string `json:"legalName"`
	Document  string `json:"document"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
}

func (in Input) validate() (domain.Client, error) {
	c := domain.Client{
		TradeName: strings.TrimSpace(in.TradeName),
		LegalName: strings.TrimSpace(in.LegalName),
		Document:  strings.TrimSpace(in.Document),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Region:    strings.TrimSpace(in.Region),
	}
	if c.TradeName == "" {
		return c, errors.New("tradeName required")
	}
	if c.Document == "" {
		return c, errors.New("document required")
	}
	if c.Email == "" {
		return c, errors.New("email required")
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, query string) ([]domain.Client, error) {
	return s.repo.List(ctx, strings.TrimSpace(query))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Client, error) {
	c, err := in.validate()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Client, error) {
	c, err := in.validate()
	if err != nil {
		return nil, err
	}
	c.ID = id
	return s.repo.Update(ctx, c)
}

// ListUsers returns the people allowed to act for the client. The client must
// exist; a client without users returns an empty list.
func (s *Service) ListUsers(ctx context.Context, clientID string) ([]domain.ClientUser, error) {
	if _, err := s.repo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx, clientID)
}
