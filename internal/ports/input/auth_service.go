package input

import (
	"context"

	"golang-connect-discord/internal/domain"
)

// AuthService interface - Input port (use case)
// Defines what the application can do with the OAuth login flow
type AuthService interface {
	// LoginURL returns the provider authorization URL to redirect the user to
	LoginURL() string

	// HandleCallback exchanges the authorization code for an access token,
	// fetches the user profile and returns the authenticated identity
	HandleCallback(ctx context.Context, code string) (*domain.User, error)
}
