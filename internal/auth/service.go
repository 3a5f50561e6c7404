package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/model"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password". Callers must surface it as one generic rejection; keeping
	// them distinguishable to the client would allow account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken      = errors.New("email already registered")
	ErrUnauthenticated = errors.New("not authenticated")
)

// Service bridges raw credentials and session identity. It owns the token
// contract (via the Issuer) but never owns persistent user storage.
type Service struct {
	store  UserStore
	issuer *Issuer
	cost   int
	log    *zap.Logger
}

func NewService(store UserStore, issuer *Issuer, bcryptCost int, log *zap.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = DefaultBcryptCost
	}
	if log == nil {
		log = zap.L()
	}
	return &Service{store: store, issuer: issuer, cost: bcryptCost, log: log}
}

// SignUp creates an account and establishes a session for it. The existence
// check runs before the create: the store enforces uniqueness, but we do not
// rely on a race-free guarantee it may not give us. Two concurrent signups
// for the same email can both pass the check; the store's unique constraint
// must then reject one, which surfaces as the same conflict.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*model.AuthUser, string, error) {
	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, name, email, hash)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issuer.Issue(user.ID, user.Metadata.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user signed up", zap.String("userId", user.ID))
	return user.PublicView(), token, nil
}

// Login verifies credentials and mints a fresh session token. A login while
// already authenticated simply replaces the stored token.
func (s *Service) Login(ctx context.Context, email, password string) (*model.AuthUser, string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	if !VerifyPassword(password, user.Metadata.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Metadata.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user logged in", zap.String("userId", user.ID))
	return user.PublicView(), token, nil
}

// CurrentUser resolves an ambient session token into the public user view.
// Any rejection reason, and a subject that no longer resolves in the store,
// all collapse to ErrUnauthenticated.
func (s *Service) CurrentUser(ctx context.Context, token string) (*model.AuthUser, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, reason := s.issuer.Verify(token)
	if reason != RejectNone {
		s.log.Debug("session token rejected", zap.String("reason", reason.String()))
		return nil, ErrUnauthenticated
	}

	return s.UserByID(ctx, claims.UserID)
}

// UserByID loads the public view for a verified subject id.
func (s *Service) UserByID(ctx context.Context, id string) (*model.AuthUser, error) {
	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user.PublicView(), nil
}

// Issuer exposes the token issuer for middleware that only needs
// verification.
func (s *Service) Issuer() *Issuer {
	return s.issuer
}
