package model

// User is the credential record as stored in the CMS. The password hash is
// self-describing (bcrypt embeds salt and cost) and never leaves the server.
type User struct {
	Object
	Metadata UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Bio          string `json:"bio,omitempty"`
	ProfilePhoto *Image `json:"profile_photo,omitempty"`
}

// AuthUser is the public view of an account. It is the only user shape that
// crosses the HTTP boundary.
type AuthUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	ProfilePhoto *Image `json:"profile_photo,omitempty"`
}

func (u *User) PublicView() *AuthUser {
	return &AuthUser{
		ID:           u.ID,
		Name:         u.Metadata.Name,
		Email:        u.Metadata.Email,
		Bio:          u.Metadata.Bio,
		ProfilePhoto: u.Metadata.ProfilePhoto,
	}
}
