package product

import (
	"context"
	"testing"

	"backoffice-api/internal/domain"
	productrepo "backoffice-api/internal/repository/product"
)

type stubRepo struct {
	created    *domain.Product
	lastCreate domain.Product
	lastFilter productrepo.ListFilter
}

func (s *stubRepo) List(_ context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	s.lastFilter = f
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.lastCreate = p
	return s.created, nil
}

func (s *stubRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func TestServiceCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	cases := []struct {
		name string
		in   Input
		want string
	}{
		{"missing distributor", Input{Code: "A1", Name: "Arroz", PriceCents: 100}, "distributorId required"},
		{"missing code", Input{DistributorID: "d1", Name: "Arroz", PriceCents: 100}, "code required"},
		{"missing name", Input{DistributorID: "d1", Code: "A1", PriceCents: 100}, "name required"},
		{"negative price", Input{DistributorID: "d1", Code: "A1", Name: "Arroz", PriceCents: -1}, "priceCents must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestServiceCreateDefaultsActive(t *testing.T) {
	repo := &stubRepo{created: &domain.Product{ID: "p1"}}
	svc := &Service{repo: repo}
	_, err := svc.Create(context.Background(), Input{DistributorID: "d1", Code: "A1", Name: "Arroz", PriceCents: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.lastCreate.Active {
		t.Fatalf("expected product active by default")
	}

	inactive := false
	_, err = svc.Create(context.Background(), Input{DistributorID: "d1", Code: "A1", Name: "Arroz", PriceCents: 100, Active: &inactive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Active {
		t.Fatalf("expected explicit active=false to stick")
	}
}

func TestServiceListTrimsFilters(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	if _, err := svc.List(context.Background(), " d1 ", " arroz "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.DistributorID != "d1" || repo.lastFilter.Query != "arroz" {
		t.Fatalf("filters not trimmed: %+v", repo.lastFilter)
	}
}
