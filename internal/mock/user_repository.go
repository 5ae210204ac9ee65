package mock

import (
	"context"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// UserRepository implements the user repository interface for tests.
type UserRepository struct {
	UserOut   *model.User
	ExistsOut bool

	CreatedUser     *model.User
	QueriedID       uuid.UUID
	QueriedUsername string

	CreateErr error
	GetErr    error
	ExistsErr error

	CreateCalled bool
	GetCalled    bool
	ExistsCalled bool
}

var _ port.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	m.CreateCalled = true
	m.CreatedUser = user
	return m.CreateErr
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	m.GetCalled = true
	m.QueriedID = id
	return m.UserOut, m.GetErr
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	m.GetCalled = true
	m.QueriedUsername = username
	return m.UserOut, m.GetErr
}

func (m *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	m.ExistsCalled = true
	m.QueriedUsername = username
	return m.ExistsOut, m.ExistsErr
}
