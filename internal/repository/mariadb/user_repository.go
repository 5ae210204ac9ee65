package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	log.Printf("creating database record for user %q...", user.Username)

	const query = `
      INSERT INTO users
        (id, username, email, password_hash, bio, is_active)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email,
		user.PasswordHash, user.Bio, user.IsActive,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	log.Printf("fetching user #%s from the database...", id)

	const query = `
      SELECT id, username, email, password_hash, bio, is_active, created_at
      FROM users
      WHERE id = ?
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	log.Printf("fetching user %q from the database...", username)

	const query = `
      SELECT id, username, email, password_hash, bio, is_active, created_at
      FROM users
      WHERE username = ?
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `
      SELECT 1
      FROM users
      WHERE username = ? OR email = ?
      LIMIT 1
    `
	var one int
	err := r.db.QueryRowContext(ctx, query, username, email).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	var user model.User
	if err := row.Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.Bio, &user.IsActive, &user.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
