package service

import (
	"context"
	"errors"
	"testing"

	perr "dreammap/internal/platform/errors"
	pnet "dreammap/internal/platform/net"
	"dreammap/internal/platform/net/middleware"

	"github.com/google/uuid"
)

func TestIssue(t *testing.T) {
	s := New()
	a, err := s.Issue(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := s.Issue(context.Background())
	if a.DreamerID == b.DreamerID {
		t.Fatal("ids repeat")
	}
	if id, ok := middleware.ParseDreamerID(a.DreamerID); !ok || id != a.DreamerID {
		t.Fatalf("issued id %q is not accepted by the identity middleware", a.DreamerID)
	}
	if a.Header != "X-Dreamer-ID" {
		t.Fatalf("header %q", a.Header)
	}
}

func TestIssueFailure(t *testing.T) {
	s := &Svc{newID: func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy") }}
	if _, err := s.Issue(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	s := New()
	if _, err := s.Resolve(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	ctx := pnet.WithDreamer(context.Background(), "3f0c7a52-8d8e-4a73-9c2b-5d1b6a8e2f10")
	got, err := s.Resolve(ctx)
	if err != nil || got.DreamerID != "3f0c7a52-8d8e-4a73-9c2b-5d1b6a8e2f10" {
		t.Fatalf("resolve %+v %v", got, err)
	}
}
