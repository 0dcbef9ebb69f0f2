package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-connect-discord/configs"
	"golang-connect-discord/internal/domain"
	"golang-connect-discord/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Compile-time check to ensure OAuthClientAdapter implements OAuthClient interface
var _ output.OAuthClient = (*OAuthClientAdapter)(nil)

const (
	defaultAuthURL    = "https://discord.com/api/oauth2/authorize"
	defaultTokenURL   = "https://discord.com/api/oauth2/token"
	defaultAPIBaseURL = "https://discord.com/api"
)

// OAuthClientAdapter struct - Output adapter for the Discord OAuth2 and user APIs
type OAuthClientAdapter struct {
	config     *oauth2.Config
	httpClient *http.Client
	apiBaseURL string
}

// NewOAuthClientAdapter func - Creates new Discord OAuth client adapter.
// Client credentials are sent form-encoded in the token request body, which
// is the style the Discord token endpoint documents.
func NewOAuthClientAdapter(cfg configs.Discord) *OAuthClientAdapter {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       []string{"identify", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   defaultAuthURL,
			TokenURL:  defaultTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	adapter := &OAuthClientAdapter{
		config: oauthConfig,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiBaseURL: defaultAPIBaseURL,
	}

	logrus.Infof("Discord OAuth client adapter initialized with redirect URI: %s", cfg.RedirectURI)

	return adapter
}

// AuthCodeURL - Builds the authorization URL with response_type=code and the
// identify and email scopes
func (a *OAuthClientAdapter) AuthCodeURL() string {
	return a.config.AuthCodeURL("")
}

// ExchangeCode - Exchanges the authorization code for an access token via a
// form-encoded POST to the token endpoint
func (a *OAuthClientAdapter) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", fmt.Errorf("token endpoint unreachable: %w", err)
		}
		// The provider answered but did not hand out a usable token
		logrus.Errorf("Token exchange rejected: %v", err)
		return "", domain.ErrNoAccessToken
	}
	if token.AccessToken == "" {
		return "", domain.ErrNoAccessToken
	}

	return token.AccessToken, nil
}

// profileResponse struct - raw users/@me payload
type profileResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
	Email         string `json:"email"`
}

// FetchUser - Fetches the authenticated user's profile with the bearer token
// and maps it to the session identity record
func (a *OAuthClientAdapter) FetchUser(ctx context.Context, accessToken string) (*domain.User, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	resp, err := client.Get(a.apiBaseURL + "/users/@me")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile endpoint returned status %d - %s", resp.StatusCode, string(body))
	}

	var profile profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	user := domain.NewUser(profile.ID, profile.Username, profile.Discriminator, profile.Avatar, profile.Email)

	return &user, nil
}
