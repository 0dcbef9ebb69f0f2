package domain

import "testing"

// TestNewUserMapsProfileFields tests that a full profile maps straight through
func TestNewUserMapsProfileFields(t *testing.T) {
	user := NewUser("123456789", "orderfan", "1337", "a1b2c3", "fan@example.com")

	if user.ID != "123456789" {
		t.Errorf("expected ID 123456789, got %s", user.ID)
	}

	if user.Username != "orderfan" {
		t.Errorf("expected Username orderfan, got %s", user.Username)
	}

	if user.Discriminator != "1337" {
		t.Errorf("expected Discriminator 1337, got %s", user.Discriminator)
	}

	expectedAvatar := "https://cdn.discordapp.com/avatars/123456789/a1b2c3.png"
	if user.AvatarURL != expectedAvatar {
		t.Errorf("expected AvatarURL %s, got %s", expectedAvatar, user.AvatarURL)
	}

	if user.Email != "fan@example.com" {
		t.Errorf("expected Email fan@example.com, got %s", user.Email)
	}
}

// TestNewUserAvatarFallback tests that a missing avatar hash falls back to the default embed avatar
func TestNewUserAvatarFallback(t *testing.T) {
	user := NewUser("123456789", "orderfan", "1337", "", "")

	if user.AvatarURL != DefaultAvatarURL {
		t.Errorf("expected default avatar URL %s, got %s", DefaultAvatarURL, user.AvatarURL)
	}
}

// TestNewUserDiscriminatorFallback tests that a missing discriminator falls back to the sentinel value
func TestNewUserDiscriminatorFallback(t *testing.T) {
	user := NewUser("123456789", "orderfan", "", "a1b2c3", "")

	if user.Discriminator != DefaultDiscriminator {
		t.Errorf("expected discriminator %s, got %s", DefaultDiscriminator, user.Discriminator)
	}
}

// TestUserDisplayTag tests the username#discriminator rendering
func TestUserDisplayTag(t *testing.T) {
	user := NewUser("123456789", "orderfan", "1337", "", "")

	if got := user.DisplayTag(); got != "orderfan#1337" {
		t.Errorf("expected display tag orderfan#1337, got %s", got)
	}
}

// TestUserLoggedIn tests that only an identity with an ID counts as logged in
func TestUserLoggedIn(t *testing.T) {
	if (User{}).LoggedIn() {
		t.Error("expected zero value user to not be logged in")
	}

	if !(User{ID: "123456789"}).LoggedIn() {
		t.Error("expected user with ID to be logged in")
	}
}
