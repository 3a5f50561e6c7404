package cms

import (
	"context"

	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/model"
)

// GetSubscriberByEmail looks up a newsletter subscriber, or ErrNotFound.
// Uncached: the result gates duplicate-subscription checks.
func (c *Client) GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	return findOne[model.Subscriber](ctx, c, map[string]any{
		"type":           "subscribers",
		"metadata.email": email,
	})
}

// CreateSubscriber stores a new newsletter subscriber.
func (c *Client) CreateSubscriber(ctx context.Context, name, email string) (*model.Subscriber, error) {
	payload := map[string]any{
		"title":  name,
		"type":   "subscribers",
		"status": "published",
		"metadata": map[string]any{
			"name":  name,
			"email": email,
		},
	}

	sub, err := insert[model.Subscriber](ctx, c, payload)
	if err != nil {
		return nil, err
	}

	c.log.Info("newsletter subscriber created", zap.String("email", email))
	return sub, nil
}
