package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlustbites/content-service/config"
	"github.com/wanderlustbites/content-service/internal/auth"
)

// fakeBucket is an httptest server impersonating the CMS objects endpoint.
// Responses are keyed by the decoded "query" parameter's type field.
type fakeBucket struct {
	t *testing.T

	// lastQuery records the most recent decoded query for assertions.
	lastQuery map[string]any
	// lastAuth records the Authorization header of the most recent POST.
	lastAuth string

	server *httptest.Server
	// respond maps object type to the JSON body written for GET queries.
	respond func(query map[string]any, w http.ResponseWriter)
	// created is the object returned for POST requests.
	created any
}

func newFakeBucket(t *testing.T) *fakeBucket {
	t.Helper()
	f := &fakeBucket{t: t}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			raw := r.URL.Query().Get("query")
			query := map[string]any{}
			require.NoError(t, json.Unmarshal([]byte(raw), &query))
			f.lastQuery = query
			f.respond(query, w)
		case http.MethodPost:
			f.lastAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"object": f.created})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBucket) client() *Client {
	return New(config.CMSConfig{
		APIURL:     f.server.URL,
		BucketSlug: "test-bucket",
		ReadKey:    "read-key",
		WriteKey:   "write-key",
		Timeout:    2 * time.Second,
	})
}

func objectsBody(objects ...map[string]any) map[string]any {
	return map[string]any{"objects": objects, "total": len(objects)}
}

func postObject(id, slug string, createdAt time.Time) map[string]any {
	return map[string]any{
		"id":         id,
		"slug":       slug,
		"title":      slug,
		"created_at": createdAt.Format(time.RFC3339),
		"metadata":   map[string]any{"title": slug, "content": "body of " + slug},
	}
}

func TestGetPosts_SortsNewestFirst(t *testing.T) {
	f := newFakeBucket(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(objectsBody(
			postObject("p1", "oldest", base),
			postObject("p2", "newest", base.Add(48*time.Hour)),
			postObject("p3", "middle", base.Add(24*time.Hour)),
		))
	}

	posts, err := f.client().GetPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Slug)
	assert.Equal(t, "middle", posts[1].Slug)
	assert.Equal(t, "oldest", posts[2].Slug)
	assert.Equal(t, "posts", f.lastQuery["type"])
}

func TestGetPosts_EmptyBucket(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
	}

	posts, err := f.client().GetPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetPost_NotFound(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := f.client().GetPost(context.Background(), "missing-post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPost_QueriesBySlug(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(objectsBody(postObject("p1", "pad-thai", time.Now())))
	}

	post, err := f.client().GetPost(context.Background(), "pad-thai")
	require.NoError(t, err)
	assert.Equal(t, "pad-thai", post.Slug)
	assert.Equal(t, "pad-thai", f.lastQuery["slug"])
	assert.Equal(t, "posts", f.lastQuery["type"])
}

func TestFindPosts_AppliesFilters(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(objectsBody())
	}

	_, err := f.client().FindPosts(context.Background(), "cat-1", "author-1")
	require.NoError(t, err)
	assert.Equal(t, "cat-1", f.lastQuery["metadata.categories"])
	assert.Equal(t, "author-1", f.lastQuery["metadata.author"])

	_, err = f.client().FindPosts(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotContains(t, f.lastQuery, "metadata.categories")
	assert.NotContains(t, f.lastQuery, "metadata.author")
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := f.client().FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestFindUserByEmail_QueriesMetadataEmail(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(objectsBody(map[string]any{
			"id":    "user-1",
			"slug":  "alice",
			"title": "Alice",
			"metadata": map[string]any{
				"name":          "Alice",
				"email":         "alice@example.com",
				"password_hash": "$2a$10$fake",
			},
		}))
	}

	user, err := f.client().FindUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice@example.com", user.Metadata.Email)
	assert.Equal(t, "alice@example.com", f.lastQuery["metadata.email"])
	assert.Equal(t, "users", f.lastQuery["type"])
}

func TestCreateUser_UsesWriteKey(t *testing.T) {
	f := newFakeBucket(t)
	f.created = map[string]any{
		"id":    "user-9",
		"slug":  "bob",
		"title": "Bob",
		"metadata": map[string]any{
			"name":          "Bob",
			"email":         "bob@example.com",
			"password_hash": "$2a$10$fake",
		},
	}

	user, err := f.client().CreateUser(context.Background(), "Bob", "bob@example.com", "$2a$10$fake")
	require.NoError(t, err)
	assert.Equal(t, "user-9", user.ID)
	assert.Equal(t, "Bearer write-key", f.lastAuth)
}

func TestGetSubscriberByEmail(t *testing.T) {
	f := newFakeBucket(t)
	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := f.client().GetSubscriberByEmail(context.Background(), "new@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	f.respond = func(_ map[string]any, w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(objectsBody(map[string]any{
			"id":       "sub-1",
			"slug":     "carol",
			"title":    "Carol",
			"metadata": map[string]any{"name": "Carol", "email": "carol@example.com"},
		}))
	}

	sub, err := f.client().GetSubscriberByEmail(context.Background(), "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub.ID)
	assert.Equal(t, "subscribers", f.lastQuery["type"])
}
