package application

import (
	"context"
	"fmt"
	"strings"

	"golang-connect-discord/internal/domain"
	"golang-connect-discord/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// AuthService struct - Application service implementing the OAuth login use cases
type AuthService struct {
	oauthClient output.OAuthClient
}

// NewAuthService func - Creates new auth service
func NewAuthService(oauthClient output.OAuthClient) *AuthService {
	return &AuthService{
		oauthClient: oauthClient,
	}
}

// LoginURL func - Use case: Build the provider authorization redirect URL
func (s *AuthService) LoginURL() string {
	return s.oauthClient.AuthCodeURL()
}

// HandleCallback func - Use case: Complete the authorization code flow.
// The steps are strictly sequential: exchange the code, then fetch the
// profile. A single failure aborts the whole operation, there is no retry.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*domain.User, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrNoAuthorizationCode
	}

	accessToken, err := s.oauthClient.ExchangeCode(ctx, code)
	if err != nil {
		logrus.Errorf("Failed to exchange authorization code: %v", err)
		return nil, err
	}

	user, err := s.oauthClient.FetchUser(ctx, accessToken)
	if err != nil {
		logrus.Errorf("Failed to fetch user profile: %v", err)
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	logrus.Infof("Authenticated Discord user: %s (id=%s)", user.DisplayTag(), user.ID)

	return user, nil
}
