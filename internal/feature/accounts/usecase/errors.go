// Package usecase implements the business logic for the accounts feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create or update
	// a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguishable by the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput is returned when a request field cannot be
	// interpreted, such as an unparseable date of birth.
	ErrInvalidInput = errors.New("invalid input")
)
