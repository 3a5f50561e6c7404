package auth

import (
	"context"
	"errors"

	"github.com/wanderlustbites/content-service/internal/model"
)

// ErrUserNotFound is the "no such record" outcome of a UserStore lookup.
// It is a normal, non-exceptional result, distinct from transport failures,
// which stores must return as other errors.
var ErrUserNotFound = errors.New("auth: user not found")

// UserStore is the external credential store consumed by the Service.
// Email uniqueness is the store's responsibility; the Service only performs
// a best-effort existence check before asking for a create.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error)
}
