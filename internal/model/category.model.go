package model

type Category struct {
	Object
	Metadata CategoryMetadata `json:"metadata"`
}

type CategoryMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
