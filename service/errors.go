package service

import "errors"

var (
	// ErrStorageFailure wraps failures of the underlying stores
	ErrStorageFailure = errors.New("storage failure")

	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	// ErrPickNotFound is returned when a pick does not exist or belongs to another user
	ErrPickNotFound = errors.New("pick not found")

	// ErrInvalidImport is returned when a CSV file cannot be read as draws at all
	ErrInvalidImport = errors.New("invalid draw import")
)
