package user

import "errors"

var (
	// ErrUserExists rejects a registration whose username or email is taken.
	ErrUserExists = errors.New("email or username already registered")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so login errors do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
