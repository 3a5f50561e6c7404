// Package search implements the free-text post filter behind the search
// endpoint. The corpus is small (a blog's post list), so the filter is a
// straight in-memory scan over the already-fetched posts.
package search

import (
	"strings"

	"github.com/wanderlustbites/content-service/internal/model"
)

// Filter returns the posts whose title, content or author name contains the
// query as a case-insensitive substring. A blank query matches everything.
func Filter(posts []model.Post, query string) []model.Post {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return posts
	}

	matched := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if matches(post, term) {
			matched = append(matched, post)
		}
	}
	return matched
}

func matches(post model.Post, term string) bool {
	if strings.Contains(strings.ToLower(post.Metadata.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Metadata.Content), term) {
		return true
	}
	if author := post.Metadata.Author; author != nil {
		if strings.Contains(strings.ToLower(author.Metadata.Name), term) {
			return true
		}
	}
	return false
}
