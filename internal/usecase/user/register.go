package user

import (
	"context"
	"fmt"

	"github.com/fhuszti/images-ms-go/internal/logger"
	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
	"golang.org/x/crypto/bcrypt"
)

type registrarSrv struct {
	repo    port.UserRepository
	genUUID port.UUIDGen
}

// compile-time check: *registrarSrv must satisfy port.UserRegistrar
var _ port.UserRegistrar = (*registrarSrv)(nil)

func NewRegistrar(repo port.UserRepository, genUUID port.UUIDGen) port.UserRegistrar {
	return &registrarSrv{repo: repo, genUUID: genUUID}
}

func (s *registrarSrv) Register(ctx context.Context, in port.RegisterInput) error {
	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if taken {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           s.genUUID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	logger.Infof(ctx, "registered user %q", in.Username)
	return nil
}
