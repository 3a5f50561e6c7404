// Package cms is the HTTP client for the headless CMS bucket that owns every
// persistent record: posts, authors, categories, user accounts and newsletter
// subscribers. Reads go through the multi-level cache; anything touching
// credentials bypasses it.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/config"
	"github.com/wanderlustbites/content-service/pkg/cache"
)

// ErrNotFound is returned when the bucket holds no object matching a lookup.
var ErrNotFound = errors.New("cms: object not found")

// defaultProps is the field set requested for list queries. depth=1 makes the
// API embed referenced objects (author, categories) instead of bare ids.
const defaultProps = "id,slug,title,metadata,created_at"

// Client talks to one CMS bucket. Safe for concurrent use.
type Client struct {
	cfg      config.CMSConfig
	http     *http.Client
	log      *zap.Logger
	mem      cache.Cache
	redis    *redis.Client
	memTTL   int
	redisTTL int
}

type Option func(*Client)

// WithLogger replaces the default global logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithCache enables the in-memory read cache for content queries.
func WithCache(mem cache.Cache, ttlSeconds int) Option {
	return func(c *Client) {
		c.mem = mem
		c.memTTL = ttlSeconds
	}
}

// WithRedis adds the shared Redis layer behind the memory cache. Has no
// effect unless WithCache is also given.
func WithRedis(rdb *redis.Client, ttlSeconds int) Option {
	return func(c *Client) {
		c.redis = rdb
		c.redisTTL = ttlSeconds
	}
}

func New(cfg config.CMSConfig, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  zap.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type objectsEnvelope[T any] struct {
	Objects []T `json:"objects"`
	Total   int `json:"total"`
}

type objectEnvelope[T any] struct {
	Object T `json:"object"`
}

type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("cms: unexpected status %d: %s", e.status, e.body)
}

// objectsURL builds the bucket objects endpoint with a JSON-encoded query.
// limit of 0 means no limit parameter.
func (c *Client) objectsURL(query map[string]any, limit int) (string, error) {
	rawQuery, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("marshal query: %w", err)
	}

	params := url.Values{}
	params.Set("query", string(rawQuery))
	params.Set("read_key", c.cfg.ReadKey)
	params.Set("props", defaultProps)
	params.Set("depth", "1")
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	return fmt.Sprintf("%s/buckets/%s/objects?%s", c.cfg.APIURL, c.cfg.BucketSlug, params.Encode()), nil
}

// find runs a list query against the bucket. A 404 means "no matching
// objects" and yields an empty slice, not an error.
func find[T any](ctx context.Context, c *Client, query map[string]any) ([]T, error) {
	endpoint, err := c.objectsURL(query, 0)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query objects: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("cms query",
		zap.Any("query", query),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return []T{}, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &apiError{status: resp.StatusCode, body: string(body)}
	}

	var envelope objectsEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode objects: %w", err)
	}
	return envelope.Objects, nil
}

// findOne runs a single-object query. Both a 404 and an empty result map to
// ErrNotFound.
func findOne[T any](ctx context.Context, c *Client, query map[string]any) (*T, error) {
	objects, err := find[T](ctx, c, query)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, ErrNotFound
	}
	return &objects[0], nil
}

// insert creates a published object in the bucket using the write key.
func insert[T any](ctx context.Context, c *Client, payload any) (*T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal object: %w", err)
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects", c.cfg.APIURL, c.cfg.BucketSlug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.WriteKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insert object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &apiError{status: resp.StatusCode, body: string(raw)}
	}

	var envelope objectEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return &envelope.Object, nil
}

// cached reads through the configured cache layers, falling back to a direct
// fetch when no cache is wired.
func cached[T any](ctx context.Context, c *Client, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if c.mem == nil {
		return fetch(ctx)
	}
	return cache.GetWithMultiLevelCache(
		ctx,
		key,
		c.mem,
		c.redis,
		fetch,
		c.memTTL,
		c.redisTTL,
		50*time.Millisecond,
		c.cfg.Timeout,
		c.redis != nil,
	)
}
