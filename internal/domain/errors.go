package domain

import "errors"

var (
	// ErrNoAuthorizationCode indicates the provider callback carried no code
	ErrNoAuthorizationCode = errors.New("authorization code missing")

	// ErrNoAccessToken indicates the token exchange yielded no access token
	ErrNoAccessToken = errors.New("token exchange returned no access token")

	// ErrNotLoggedIn indicates the request carried no session identity
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrMissingRequiredField indicates a required form field is missing or empty
	ErrMissingRequiredField = errors.New("required field missing")

	// ErrInvalidImageData indicates the submitted image data URI could not be decoded
	ErrInvalidImageData = errors.New("invalid image data uri")
)
