package model

import "time"

// Object is the envelope shared by every record in the headless CMS bucket.
// Type-specific fields live under Metadata on the concrete types below.
type Object struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Type        string    `json:"type,omitempty"`
	Status      string    `json:"status,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at,omitzero"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

// Image is a CMS media reference. ImgixURL supports on-the-fly transforms
// and is what clients should render.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}
