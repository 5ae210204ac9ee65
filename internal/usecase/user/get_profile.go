package user

import (
	"context"
	"fmt"

	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

type profileGetterSrv struct {
	repo port.UserRepository
}

// compile-time check: *profileGetterSrv must satisfy port.ProfileGetter
var _ port.ProfileGetter = (*profileGetterSrv)(nil)

func NewProfileGetter(repo port.UserRepository) port.ProfileGetter {
	return &profileGetterSrv{repo: repo}
}

func (s *profileGetterSrv) GetProfile(ctx context.Context, id uuid.UUID) (port.ProfileOutput, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return port.ProfileOutput{}, fmt.Errorf("fetch user #%s: %w", id, err)
	}
	if u == nil {
		return port.ProfileOutput{}, ErrUserNotFound
	}
	return port.ProfileOutput{ID: u.ID, Username: u.Username, Bio: u.Bio}, nil
}
