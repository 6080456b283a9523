package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/auth"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/user"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	google oauth.GoogleService
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		google:         googleService,
	}
}

func (a *AuthServiceImpl) tokenResponseFor(u user.User) (auth.LoginResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		Role:        string(u.Role),
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = *u.EmployeeID
	}

	return resp, nil
}

// Login implements auth.AuthService. An unknown email and a wrong password
// are indistinguishable to the caller.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.tokenResponseFor(userData)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, userAgent string) (string, error) {
	state := a.google.GenerateState(userAgent)
	if state == "" {
		return "", fmt.Errorf("failed to generate oauth state")
	}

	return a.google.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService. Only accounts already
// linked to a Google identity can sign in this way; there is no on-the-fly
// account creation.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByOAuth(ctx, "google", info.GoogleID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by oauth identity: %w", err)
	}

	return a.tokenResponseFor(userData)
}
