package cms

import (
	"context"
	"fmt"
	"sort"

	"github.com/wanderlustbites/content-service/internal/model"
)

// sortPostsNewestFirst orders posts by creation time, newest first. The API
// gives no ordering guarantee, so every post listing applies this.
func sortPostsNewestFirst(posts []model.Post) []model.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// GetPosts returns all published posts, newest first, with author and
// category data embedded.
func (c *Client) GetPosts(ctx context.Context) ([]model.Post, error) {
	return cached(ctx, c, "posts:all", func(ctx context.Context) ([]model.Post, error) {
		posts, err := find[model.Post](ctx, c, map[string]any{"type": "posts"})
		if err != nil {
			return nil, err
		}
		return sortPostsNewestFirst(posts), nil
	})
}

// GetPost returns a single post by slug, or ErrNotFound.
func (c *Client) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	return cached(ctx, c, "posts:slug:"+slug, func(ctx context.Context) (*model.Post, error) {
		return findOne[model.Post](ctx, c, map[string]any{"type": "posts", "slug": slug})
	})
}

// GetPostsByCategory returns the posts referencing a category id, newest
// first.
func (c *Client) GetPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error) {
	key := "posts:category:" + categoryID
	return cached(ctx, c, key, func(ctx context.Context) ([]model.Post, error) {
		posts, err := find[model.Post](ctx, c, map[string]any{
			"type":                "posts",
			"metadata.categories": categoryID,
		})
		if err != nil {
			return nil, err
		}
		return sortPostsNewestFirst(posts), nil
	})
}

// GetPostsByAuthor returns the posts written by an author id, newest first.
func (c *Client) GetPostsByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	key := "posts:author:" + authorID
	return cached(ctx, c, key, func(ctx context.Context) ([]model.Post, error) {
		posts, err := find[model.Post](ctx, c, map[string]any{
			"type":            "posts",
			"metadata.author": authorID,
		})
		if err != nil {
			return nil, err
		}
		return sortPostsNewestFirst(posts), nil
	})
}

// FindPosts runs the filtered post query behind search: optional category and
// author constraints, newest first. The free-text part of search happens in
// memory on this result, not in the bucket query.
func (c *Client) FindPosts(ctx context.Context, categoryID, authorID string) ([]model.Post, error) {
	query := map[string]any{"type": "posts"}
	if categoryID != "" {
		query["metadata.categories"] = categoryID
	}
	if authorID != "" {
		query["metadata.author"] = authorID
	}

	key := fmt.Sprintf("posts:find:category=%s:author=%s", categoryID, authorID)
	return cached(ctx, c, key, func(ctx context.Context) ([]model.Post, error) {
		posts, err := find[model.Post](ctx, c, query)
		if err != nil {
			return nil, err
		}
		return sortPostsNewestFirst(posts), nil
	})
}

// GetCategories returns all categories.
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	return cached(ctx, c, "categories:all", func(ctx context.Context) ([]model.Category, error) {
		return find[model.Category](ctx, c, map[string]any{"type": "categories"})
	})
}

// GetCategory returns a single category by slug, or ErrNotFound.
func (c *Client) GetCategory(ctx context.Context, slug string) (*model.Category, error) {
	return cached(ctx, c, "categories:slug:"+slug, func(ctx context.Context) (*model.Category, error) {
		return findOne[model.Category](ctx, c, map[string]any{"type": "categories", "slug": slug})
	})
}

// GetAuthors returns all authors.
func (c *Client) GetAuthors(ctx context.Context) ([]model.Author, error) {
	return cached(ctx, c, "authors:all", func(ctx context.Context) ([]model.Author, error) {
		return find[model.Author](ctx, c, map[string]any{"type": "authors"})
	})
}

// GetAuthor returns a single author by slug, or ErrNotFound.
func (c *Client) GetAuthor(ctx context.Context, slug string) (*model.Author, error) {
	return cached(ctx, c, "authors:slug:"+slug, func(ctx context.Context) (*model.Author, error) {
		return findOne[model.Author](ctx, c, map[string]any{"type": "authors", "slug": slug})
	})
}
