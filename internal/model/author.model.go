package model

type Author struct {
	Object
	Metadata AuthorMetadata `json:"metadata"`
}

type AuthorMetadata struct {
	Name         string `json:"name"`
	Bio          string `json:"bio,omitempty"`
	ProfilePhoto *Image `json:"profile_photo,omitempty"`
}
