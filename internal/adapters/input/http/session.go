package http

import (
	"github.com/gofiber/fiber/v2/middleware/session"

	"golang-connect-discord/internal/domain"
)

// Session value keys for the stored identity. The identity is flattened to
// plain strings so the session data stays gob-encodable without type
// registration.
const (
	sessionKeyUserID        = "user_id"
	sessionKeyUsername      = "user_name"
	sessionKeyDiscriminator = "user_discriminator"
	sessionKeyAvatarURL     = "user_avatar_url"
	sessionKeyEmail         = "user_email"
)

// storeUser writes the identity record into the session
func storeUser(sess *session.Session, user domain.User) {
	sess.Set(sessionKeyUserID, user.ID)
	sess.Set(sessionKeyUsername, user.Username)
	sess.Set(sessionKeyDiscriminator, user.Discriminator)
	sess.Set(sessionKeyAvatarURL, user.AvatarURL)
	sess.Set(sessionKeyEmail, user.Email)
}

// loadUser reads the identity record back from the session.
// The second return value reports whether a logged in identity was present.
func loadUser(sess *session.Session) (domain.User, bool) {
	id, _ := sess.Get(sessionKeyUserID).(string)
	if id == "" {
		return domain.User{}, false
	}

	username, _ := sess.Get(sessionKeyUsername).(string)
	discriminator, _ := sess.Get(sessionKeyDiscriminator).(string)
	avatarURL, _ := sess.Get(sessionKeyAvatarURL).(string)
	email, _ := sess.Get(sessionKeyEmail).(string)

	return domain.User{
		ID:            id,
		Username:      username,
		Discriminator: discriminator,
		AvatarURL:     avatarURL,
		Email:         email,
	}, true
}
