package port

import (
	"context"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// GetByID returns (nil, nil) when no user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByUsername returns (nil, nil) when no user exists.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
