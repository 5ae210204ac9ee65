package mariadb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/images-ms-go/internal/model"
)

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "bio", "is_active", "created_at"}
}

func TestUserRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewUserRepository(sqlDB)

	u := &model.User{
		ID:           testOwnerID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Username, u.Email, u.PasswordHash, u.Bio, u.IsActive).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), u); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestUserRepository_GetByUsername_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewUserRepository(sqlDB)

	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(userColumns()).
		AddRow(uuidBytes(testOwnerID), "alice", "alice@example.com", "$2a$10$hash", nil, true, created)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername() returned unexpected error: %v", err)
	}
	if u == nil {
		t.Fatal("expected a user, got nil")
	}
	if u.ID != testOwnerID {
		t.Errorf("expected ID %q, got %q", testOwnerID, u.ID)
	}
	if u.Bio != nil {
		t.Errorf("expected nil bio, got %v", u.Bio)
	}
	if !u.IsActive {
		t.Error("expected IsActive to be true")
	}
}

func TestUserRepository_GetByID_NoRows(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewUserRepository(sqlDB)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(testOwnerID).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	u, err := repo.GetByID(context.Background(), testOwnerID)
	if err != nil {
		t.Fatalf("expected no error for an absent user, got %v", err)
	}
	if u != nil {
		t.Errorf("expected nil user, got %+v", u)
	}
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want bool
	}{
		{"taken", sqlmock.NewRows([]string{"1"}).AddRow(1), true},
		{"free", sqlmock.NewRows([]string{"1"}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("unexpected error when opening stub database: %s", err)
			}
			defer func() { _ = sqlDB.Close() }()

			repo := NewUserRepository(sqlDB)

			mock.ExpectQuery("SELECT 1").
				WithArgs("alice", "alice@example.com").
				WillReturnRows(tc.rows)

			got, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "alice@example.com")
			if err != nil {
				t.Fatalf("ExistsByUsernameOrEmail() returned unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ExistsByUsernameOrEmail() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUserRepository_Exists_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewUserRepository(sqlDB)

	mock.ExpectQuery("SELECT 1").
		WillReturnError(errors.New("db.Query failed"))

	if _, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "alice@example.com"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
