package output

import (
	"context"

	"golang-connect-discord/internal/domain"
)

// OAuthClient interface - Output port
// Defines what the application needs from the identity provider
type OAuthClient interface {
	// AuthCodeURL builds the authorization URL with response_type=code
	// and the identity scopes
	AuthCodeURL() string

	// ExchangeCode exchanges an authorization code for an access token.
	// Returns domain.ErrNoAccessToken when the provider answers without
	// handing out a usable token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchUser fetches the authenticated user's profile with the bearer
	// token and maps it to the session identity record
	FetchUser(ctx context.Context, accessToken string) (*domain.User, error)
}
