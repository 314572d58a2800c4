package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toolshed/handyman/internal/handyman/domain"
	"github.com/toolshed/handyman/internal/handyman/store"
	"github.com/toolshed/handyman/pkg/cryptox"
	"github.com/toolshed/handyman/pkg/idx"
	"github.com/toolshed/handyman/pkg/jwtx"
	"github.com/toolshed/handyman/pkg/slogx"
)

// AccountService handles registration and sign-in. It is the only service
// that touches credentials or mints tokens.
type AccountService struct {
	store    store.Store
	signer   jwtx.Signer
	issuer   string
	tokenTTL time.Duration
}

func NewAccountService(st store.Store, signer jwtx.Signer, issuer string, tokenTTL time.Duration) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = jwtx.DefaultAccessTokenTTL
	}
	return &AccountService{
		store:    st,
		signer:   signer,
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

// Session is what a successful sign-in yields: a bearer token plus the
// signed-in user's email and their full project list, so the client can
// render immediately without a follow-up fetch.
type Session struct {
	Token    string
	Email    string
	Projects []domain.Project
}

// CreateAccount registers a new user. The password is hashed before it
// ever reaches the store; no session is created, the user signs in next.
func (s *AccountService) CreateAccount(ctx context.Context, firstName, lastName, email, password string) (domain.User, error) {
	if password == "" {
		return domain.User{}, &domain.ValidationError{Field: "password", Reason: "is required"}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := domain.NewUser(idx.New().String(), firstName, lastName, email, hash, time.Now().UTC())
	if err != nil {
		return domain.User{}, err
	}

	if err := s.store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("account created", "user_id", user.ID)
	return user, nil
}

// SignIn verifies the credentials and returns a fresh session. Every
// failure collapses to ErrUnauthorized so responses never reveal whether
// an email is registered.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (Session, error) {
	user, err := s.store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrUnauthorized
		}
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return Session{}, ErrUnauthorized
		}
		return Session{}, fmt.Errorf("verify password: %w", err)
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Email, s.issuer, s.tokenTTL, time.Now().UTC())
	token, err := s.signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	projects, err := s.store.Projects().ListProjects(ctx, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("list projects: %w", err)
	}

	slogx.FromContext(ctx).Info("user signed in", "user_id", user.ID)

	return Session{
		Token:    token,
		Email:    user.Email,
		Projects: projects,
	}, nil
}
