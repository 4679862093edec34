// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given lookup value.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to persist a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidLookup is returned when the lookup kind is outside the closed set
	// or an ID value cannot be parsed as an integer.
	ErrInvalidLookup = errors.New("invalid lookup")
)
