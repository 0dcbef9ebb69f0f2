package domain

import "fmt"

const (
	// DefaultAvatarURL is used when the Discord profile carries no avatar hash
	DefaultAvatarURL = "https://cdn.discordapp.com/embed/avatars/0.png"

	// DefaultDiscriminator is the sentinel for accounts without a discriminator
	DefaultDiscriminator = "0"

	avatarURLFormat = "https://cdn.discordapp.com/avatars/%s/%s.png"
)

// User represents the authenticated identity held in the session (domain entity).
// Serialization happens at the adapter boundaries, never on the entity itself.
type User struct {
	ID            string
	Username      string
	Discriminator string
	AvatarURL     string
	Email         string
}

// NewUser builds a session identity from raw Discord profile fields.
// The avatar hash is expanded to a CDN URL, falling back to the default
// embed avatar when absent. A missing discriminator falls back to "0".
func NewUser(id, username, discriminator, avatarHash, email string) User {
	avatarURL := DefaultAvatarURL
	if avatarHash != "" {
		avatarURL = fmt.Sprintf(avatarURLFormat, id, avatarHash)
	}
	if discriminator == "" {
		discriminator = DefaultDiscriminator
	}

	return User{
		ID:            id,
		Username:      username,
		Discriminator: discriminator,
		AvatarURL:     avatarURL,
		Email:         email,
	}
}

// DisplayTag returns the username#discriminator form used in order mails
func (u User) DisplayTag() string {
	return fmt.Sprintf("%s#%s", u.Username, u.Discriminator)
}

// LoggedIn reports whether the identity belongs to an authenticated user
func (u User) LoggedIn() bool {
	return u.ID != ""
}
