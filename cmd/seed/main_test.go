package main

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeMC777/food-orders/internal/user"
)

// stubUsers implements user.Repository in memory, keyed by email.
type stubUsers struct {
	byEmail map[string]*user.User
}

func (s *stubUsers) Create(ctx context.Context, u *user.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return user.ErrAlreadyExist
	}
	cp := *u
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func TestEnsureUser_CreatesThenReuses(t *testing.T) {
	users := &stubUsers{byEmail: map[string]*user.User{}}
	ctx := context.Background()

	first, err := ensureUser(ctx, users, "demo@example.com", "demo1234")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.PasswordHash == "demo1234" || !user.CheckPassword(first.PasswordHash, "demo1234") {
		t.Fatalf("password not hashed with bcrypt")
	}

	again, err := ensureUser(ctx, users, "demo@example.com", "demo1234")
	if err != nil {
		t.Fatalf("reuse: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("id=%s, want existing %s", again.ID, first.ID)
	}
}

func TestEnsureUser_WrongPassword(t *testing.T) {
	users := &stubUsers{byEmail: map[string]*user.User{}}
	ctx := context.Background()

	if _, err := ensureUser(ctx, users, "demo@example.com", "demo1234"); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := ensureUser(ctx, users, "demo@example.com", "other-pass")
	if !errors.Is(err, errWrongPassword) {
		t.Fatalf("err=%v, want errWrongPassword", err)
	}
}
