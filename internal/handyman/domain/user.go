package domain

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports a missing or malformed field on entity
// construction. Handlers map it to a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// User owns an ordered list of projects. The password credential is only
// ever stored hashed; sign-in verification happens against the hash.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // unique, compared case-sensitively
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates the personal fields and returns a User carrying the
// already-hashed credential. The id is assigned by the caller so creation
// and persistence can share one ULID.
func NewUser(id, firstName, lastName, email, passwordHash string, now time.Time) (User, error) {
	if strings.TrimSpace(firstName) == "" {
		return User{}, requiredField("firstName")
	}
	if strings.TrimSpace(lastName) == "" {
		return User{}, requiredField("lastName")
	}
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	if passwordHash == "" {
		return User{}, requiredField("password")
	}

	return User{
		ID:           id,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// validateEmail checks the minimal shape the original backend accepted:
// non-empty, one "@" with characters on both sides and a dot in the
// domain. Deliverability is not our problem.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return requiredField("email")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if !strings.Contains(email[at+1:], ".") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	return nil
}
