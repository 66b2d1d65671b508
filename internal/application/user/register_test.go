package user_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	app "github.com/mohammadpnp/contact-book/internal/application/user"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

func TestRegisterSuccess(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := app.NewRegister(repo, bcrypt.MinCost, zap.NewNop())

	out, err := uc.Execute(context.Background(), app.RegisterInput{
		Username: "alice",
		Password: "pw1",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Username != "alice" || out.Name != "Alice" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out.Token != "" {
		t.Fatal("register must not issue a token")
	}

	stored := repo.users["alice"]
	if stored.Password == "pw1" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := app.NewRegister(repo, bcrypt.MinCost, zap.NewNop())

	in := app.RegisterInput{Username: "alice", Password: "pw1", Name: "Alice"}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	if err == nil {
		t.Fatal("expected error")
	}
	if failure.KindOf(err) != failure.Conflict {
		t.Fatalf("expected Conflict, got %v", failure.KindOf(err))
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := app.NewRegister(repo, bcrypt.MinCost, zap.NewNop())

	_, err := uc.Execute(context.Background(), app.RegisterInput{
		Username: "alice",
		Password: "pw1",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if failure.KindOf(err) != failure.Validation {
		t.Fatalf("expected Validation, got %v", failure.KindOf(err))
	}
	if len(repo.users) != 0 {
		t.Fatal("validation failure must not create a user")
	}
}
