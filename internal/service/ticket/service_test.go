package ticket

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"backoffice-api/internal/domain"
)

type stubRepo struct {
	created     *domain.Ticket
	getTicket   *domain.Ticket
	getErr      error
	comment     *domain.TicketComment
	lastCreate  domain.Ticket
	lastComment domain.TicketComment
}

func (s *stubRepo) List(_ context.Context, _ domain.TicketStatus) ([]domain.Ticket, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Ticket, error) {
	return s.getTicket, s.getErr
}

func (s *stubRepo) Create(_ context.Context, t domain.Ticket) (*domain.Ticket, error) {
	s.lastCreate = t
	return s.created, nil
}

func (s *stubRepo) Update(_ context.Context, t domain.Ticket) (*domain.Ticket, error) {
	return &t, nil
}

func (s *stubRepo) AddComment(_ context.Context, c domain.TicketComment) (*domain.TicketComment, error) {
	s.lastComment = c
	return s.comment, nil
}

func TestServiceCreateDefaultsAndID(t *testing.T) {
	repo := &stubRepo{created: &domain.Ticket{}}
	svc := &Service{repo: repo}
	_, err := svc.Create(context.Background(), Input{ClientID: "c1", Subject: "Pedido atrasado"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Status != domain.TicketStatusOpen {
		t.Fatalf("expected open status, got %s", repo.lastCreate.Status)
	}
	if !strings.HasPrefix(repo.lastCreate.ID, "TCK-") {
		t.Fatalf("unexpected ticket id %q", repo.lastCreate.ID)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	_, err := svc.Create(context.Background(), Input{Subject: "x"})
	if err == nil || err.Error() != "clientId required" {
		t.Fatalf("expected clientId error, got %v", err)
	}

	_, err = svc.Create(context.Background(), Input{ClientID: "c1"})
	if err == nil || err.Error() != "subject required" {
		t.Fatalf("expected subject error, got %v", err)
	}

	_, err = svc.Create(context.Background(), Input{ClientID: "c1", Subject: "x", Status: "weird"})
	if err == nil || !strings.Contains(err.Error(), "unknown status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestServiceCreateNormalizesTags(t *testing.T) {
	repo := &stubRepo{created: &domain.Ticket{}}
	svc := &Service{repo: repo}
	_, err := svc.Create(context.Background(), Input{
		ClientID: "c1",
		Subject:  "Pedido atrasado",
		Tags:     []string{" Entrega ", "entrega", "", "URGENTE"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"entrega", "urgente"}
	if !reflect.DeepEqual(repo.lastCreate.Tags, want) {
		t.Fatalf("unexpected tags %v", repo.lastCreate.Tags)
	}
}

func TestServiceAddCommentValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	_, err := svc.AddComment(context.Background(), "t1", CommentInput{Body: "x"})
	if err == nil || err.Error() != "author required" {
		t.Fatalf("expected author error, got %v", err)
	}

	_, err = svc.AddComment(context.Background(), "t1", CommentInput{Author: "ana"})
	if err == nil || err.Error() != "body required" {
		t.Fatalf("expected body error, got %v", err)
	}
}

func TestServiceAddCommentUnknownTicket(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	_, err := svc.AddComment(context.Background(), "ghost", CommentInput{Author: "ana", Body: "oi"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceAddCommentHappyPath(t *testing.T) {
	repo := &stubRepo{
		getTicket: &domain.Ticket{ID: "t1"},
		comment:   &domain.TicketComment{ID: "cm1"},
	}
	svc := &Service{repo: repo}
	got, err := svc.AddComment(context.Background(), "t1", CommentInput{Author: " ana ", Body: " resolvido "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "cm1" {
		t.Fatalf("unexpected comment %+v", got)
	}
	if repo.lastComment.Author != "ana" || repo.lastComment.Body != "resolvido" {
		t.Fatalf("comment not trimmed: %+v", repo.lastComment)
	}
}
