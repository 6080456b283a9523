package auth

import (
	"context"
)

// AuthService defines authentication operations.
type AuthService interface {
	// Login verifies email/password credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginWithGoogle returns the Google consent redirect URL
	LoginWithGoogle(ctx context.Context, userAgent string) (redirectURL string, err error)

	// OAuthCallbackGoogle exchanges the callback code and issues an access
	// token for the matched user
	OAuthCallbackGoogle(ctx context.Context, code string) (LoginResponse, error)
}
