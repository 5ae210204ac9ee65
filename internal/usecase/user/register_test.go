package user

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/images-ms-go/internal/mock"
	"github.com/fhuszti/images-ms-go/internal/port"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	mockID := msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	repo := &mock.UserRepository{}
	svc := NewRegistrar(repo, func() msuuid.UUID { return mockID })

	err := svc.Register(context.Background(), port.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	u := repo.CreatedUser
	if u == nil {
		t.Fatal("expected repo.Create to be called")
	}
	if u.ID != mockID {
		t.Errorf("expected ID %q, got %q", mockID, u.ID)
	}
	if u.Username != "alice" || u.Email != "alice@example.com" {
		t.Errorf("unexpected identity fields: %q / %q", u.Username, u.Email)
	}
	if !u.IsActive {
		t.Error("expected IsActive to be true")
	}
	if u.PasswordHash == "s3cret-pass" {
		t.Fatal("password must never be stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	repo := &mock.UserRepository{ExistsOut: true}
	svc := NewRegistrar(repo, msuuid.NewUUID)

	err := svc.Register(context.Background(), port.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.CreateCalled {
		t.Error("did not expect repo.Create to be called")
	}
}

func TestRegister_RepoError(t *testing.T) {
	repo := &mock.UserRepository{CreateErr: errors.New("repo failure")}
	svc := NewRegistrar(repo, msuuid.NewUUID)

	err := svc.Register(context.Background(), port.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
