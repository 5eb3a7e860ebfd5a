package product

import (
	"context"
	"errors"
	"strings"

	"backoffice-api/internal/domain"
	productrepo "backoffice-api/internal/repository/product"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	DistributorID string `json:"distributorId"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PriceCents    int64  `json:"priceCents"`
	Unit          string `json:"unit"`
	Active        *bool  `json:"active"`
}

func (in Input) validate() (domain.Product, error) {
	p := domain.Product{
		DistributorID: strings.TrimSpace(in.DistributorID),
		Code:          strings.TrimSpace(in.Code),
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		PriceCents:    in.PriceCents,
		Unit:          strings.TrimSpace(in.Unit),
		Active:        true,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if p.DistributorID == "" {
		return p, errors.New("distributorId required")
	}
	if p.Code == "" {
		return p, errors.New("code required")
	}
	if p.Name == "" {
		return p, errors.New("name required")
	}
	if p.PriceCents < 0 {
		return p, errors.New("priceCents must not be negative")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, distributorID, query string) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{
		DistributorID: strings.TrimSpace(distributorID),
		Query:         strings.TrimSpace(query),
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	p, err := in.validate()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	p, err := in.validate()
	if err != nil {
		return nil, err
	}
	p.ID = id
	return s.repo.Update(ctx, p)
}
