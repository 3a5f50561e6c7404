package model

type Post struct {
	Object
	Metadata PostMetadata `json:"metadata"`
}

type PostMetadata struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	FeaturedImage *Image     `json:"featured_image,omitempty"`
	Author        *Author    `json:"author,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
}
