package distributor

import (
	"context"
	"errors"
	"strings"

	"backoffice-api/internal/domain"
	distributorrepo "backoffice-api/internal/repository/distributor"
)

type Service struct {
	repo distributorRepo
}

type distributorRepo interface {
	List(ctx context.Context) ([]domain.Distributor, error)
	GetByID(ctx context.Context, id string) (*domain.Distributor, error)
	Create(ctx context.Context, d domain.Distributor) (*domain.Distributor, error)
	Update(ctx context.Context, d domain.Distributor) (*domain.Distributor, error)
}

func New(repo distributorrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name              string `json:"name"`
	CNPJ              string `json:"cnpj"`
	State             string `json:"state"`
	MinimumOrderCents int64  `json:"minimumOrderCents"`
}

func (in Input) validate() (domain.Distributor, error) {
	d := domain.Distributor{
		Name:              strings.TrimSpace(in.Name),
		CNPJ:              strings.TrimSpace(in.CNPJ),
		State:             strings.ToUpper(strings.TrimSpace(in.State)),
		MinimumOrderCents: in.MinimumOrderCents,
	}
	if d.Name == "" {
		return d, errors.New("name required")
	}
	if d.CNPJ == "" {
		return d, errors.New("cnpj required")
	}
	if d.MinimumOrderCents < 0 {
		return d, errors.New("minimumOrderCents must not be negative")
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Distributor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Distributor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Distributor, error) {
	d, err := in.validate()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Distributor, error) {
	d, err := in.validate()
	if err != nil {
		return nil, err
	}
	d.ID = id
	return s.repo.Update(ctx, d)
}
