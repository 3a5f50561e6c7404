package cms

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/auth"
	"github.com/wanderlustbites/content-service/internal/model"
)

// The user store deliberately bypasses the read cache: a stale account record
// must never decide a credential check or a session lookup.

// FindUserByEmail looks up an account by its login email.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := findOne[model.User](ctx, c, map[string]any{
		"type":           "users",
		"metadata.email": email,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindUserByID looks up an account by its object id.
func (c *Client) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	user, err := findOne[model.User](ctx, c, map[string]any{
		"type": "users",
		"id":   id,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser stores a new account. Only the bcrypt hash is persisted; the raw
// password never reaches this layer.
func (c *Client) CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	payload := map[string]any{
		"title":  name,
		"type":   "users",
		"status": "published",
		"metadata": map[string]any{
			"name":          name,
			"email":         email,
			"password_hash": passwordHash,
		},
	}

	user, err := insert[model.User](ctx, c, payload)
	if err != nil {
		return nil, err
	}

	c.log.Info("user record created", zap.String("userId", user.ID))
	return user, nil
}
