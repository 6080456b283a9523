package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/auth"
	"github.com/workstream-hr/workforce-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	redirectURL, err := a.authService.LoginWithGoogle(r.Context(), r.UserAgent())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cookie := &http.Cookie{
		Name:     "state",
		Value:    stateFromRedirectURL(redirectURL),
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func stateFromRedirectURL(redirectURL string) string {
	if u, err := url.Parse(redirectURL); err == nil {
		return u.Query().Get("state")
	}
	return ""
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}
	if stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		slog.Error("OAuth state mismatch")
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	result, err := a.authService.OAuthCallbackGoogle(r.Context(), code)
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}
