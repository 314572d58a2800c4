package service

import "errors"

var (
	// ErrNotFound is returned when the addressed project, material or
	// laborer does not exist or does not belong to the caller. The two
	// cases are deliberately indistinguishable.
	ErrNotFound = errors.New("service: not found")

	// ErrUnauthorized is returned for any sign-in failure, whether the
	// email is unknown or the password is wrong.
	ErrUnauthorized = errors.New("service: invalid credentials")

	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("service: email already registered")
)
