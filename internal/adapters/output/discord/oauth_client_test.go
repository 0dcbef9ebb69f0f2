package discord

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"golang-connect-discord/configs"
	"golang-connect-discord/internal/domain"
)

func testAdapter() *OAuthClientAdapter {
	return NewOAuthClientAdapter(configs.Discord{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:3000/api/auth/callback",
	})
}

// TestAuthCodeURL tests that the authorization URL carries the code response type and identity scopes
func TestAuthCodeURL(t *testing.T) {
	adapter := testAdapter()

	authURL, err := url.Parse(adapter.AuthCodeURL())
	if err != nil {
		t.Fatalf("expected a parseable URL, got %v", err)
	}

	query := authURL.Query()
	if got := query.Get("response_type"); got != "code" {
		t.Errorf("expected response_type=code, got %s", got)
	}

	if got := query.Get("client_id"); got != "client-id" {
		t.Errorf("expected client_id=client-id, got %s", got)
	}

	if got := query.Get("scope"); got != "identify email" {
		t.Errorf("expected scope 'identify email', got %q", got)
	}

	if got := query.Get("redirect_uri"); got != "http://localhost:3000/api/auth/callback" {
		t.Errorf("expected configured redirect URI, got %s", got)
	}
}

// TestExchangeCodeReturnsAccessToken tests the happy path of the token exchange
func TestExchangeCodeReturnsAccessToken(t *testing.T) {
	var gotCode string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotCode = r.FormValue("code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer"}`))
	}))
	defer server.Close()

	adapter := testAdapter()
	adapter.config.Endpoint.TokenURL = server.URL

	token, err := adapter.ExchangeCode(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if token != "tok-123" {
		t.Errorf("expected access token tok-123, got %s", token)
	}

	if gotCode != "auth-code" {
		t.Errorf("expected code auth-code in token request, got %s", gotCode)
	}
}

// TestExchangeCodeWithoutAccessToken tests that a tokenless provider answer maps to the sentinel
func TestExchangeCodeWithoutAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer server.Close()

	adapter := testAdapter()
	adapter.config.Endpoint.TokenURL = server.URL

	_, err := adapter.ExchangeCode(context.Background(), "auth-code")
	if !errors.Is(err, domain.ErrNoAccessToken) {
		t.Errorf("expected ErrNoAccessToken, got %v", err)
	}
}

// TestExchangeCodeProviderRejection tests that a provider error response maps to the sentinel
func TestExchangeCodeProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	adapter := testAdapter()
	adapter.config.Endpoint.TokenURL = server.URL

	_, err := adapter.ExchangeCode(context.Background(), "expired-code")
	if !errors.Is(err, domain.ErrNoAccessToken) {
		t.Errorf("expected ErrNoAccessToken, got %v", err)
	}
}

// TestExchangeCodeUnreachableEndpoint tests that a network failure stays a generic error
func TestExchangeCodeUnreachableEndpoint(t *testing.T) {
	adapter := testAdapter()
	adapter.config.Endpoint.TokenURL = "http://127.0.0.1:1/token"

	_, err := adapter.ExchangeCode(context.Background(), "auth-code")
	if err == nil {
		t.Fatal("expected error for unreachable endpoint, got nil")
	}

	if errors.Is(err, domain.ErrNoAccessToken) {
		t.Errorf("expected a generic network error, got ErrNoAccessToken")
	}
}

// TestFetchUserMapsProfile tests the bearer request and the identity mapping
func TestFetchUserMapsProfile(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123456789","username":"orderfan","discriminator":"1337","avatar":"a1b2c3","email":"fan@example.com"}`))
	}))
	defer server.Close()

	adapter := testAdapter()
	adapter.apiBaseURL = server.URL

	user, err := adapter.FetchUser(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotAuthorization != "Bearer tok-123" {
		t.Errorf("expected bearer authorization header, got %q", gotAuthorization)
	}

	if user.ID != "123456789" || user.Username != "orderfan" {
		t.Errorf("unexpected identity mapping: %+v", user)
	}

	expectedAvatar := "https://cdn.discordapp.com/avatars/123456789/a1b2c3.png"
	if user.AvatarURL != expectedAvatar {
		t.Errorf("expected avatar URL %s, got %s", expectedAvatar, user.AvatarURL)
	}
}

// TestFetchUserAppliesFallbacks tests the avatar and discriminator fallbacks on sparse profiles
func TestFetchUserAppliesFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123456789","username":"orderfan"}`))
	}))
	defer server.Close()

	adapter := testAdapter()
	adapter.apiBaseURL = server.URL

	user, err := adapter.FetchUser(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.AvatarURL != domain.DefaultAvatarURL {
		t.Errorf("expected default avatar URL, got %s", user.AvatarURL)
	}

	if user.Discriminator != domain.DefaultDiscriminator {
		t.Errorf("expected default discriminator, got %s", user.Discriminator)
	}
}

// TestFetchUserRejectsNon200 tests that a provider error status fails the fetch
func TestFetchUserRejectsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"401: Unauthorized"}`))
	}))
	defer server.Close()

	adapter := testAdapter()
	adapter.apiBaseURL = server.URL

	_, err := adapter.FetchUser(context.Background(), "bad-token")
	if err == nil {
		t.Fatal("expected error for unauthorized profile fetch, got nil")
	}
}
