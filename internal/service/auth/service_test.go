package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/auth"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/workstream-hr/workforce-backend-go/internal/repository/postgresql"
)

var testAuthDB *database.DB

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func authTestInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testAuthDB != nil {
		return
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func newTestAuthService() auth.AuthService {
	userRepo := postgresql.NewUserRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(testAuthDB, userRepo, jwtService, nil)
}

// createTestUser inserts a password user and returns its id. Email is made
// unique per call so tests never collide on the users_email_key index.
func createTestUser(t *testing.T, ctx context.Context, password string) (string, string) {
	t.Helper()

	email := fmt.Sprintf("login-test-%d@example.com", time.Now().UnixNano())
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	var userID string
	err = testAuthDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, 'employee', NOW(), NOW())
		RETURNING id
	`, email, string(hashed)).Scan(&userID)
	require.NoError(t, err)

	return userID, email
}

func TestLoginSuccess(t *testing.T) {
	authTestInit(t)
	ctx := context.Background()

	userID, email := createTestUser(t, ctx, "password123")
	svc := newTestAuthService()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "employee", resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLoginWrongPassword(t *testing.T) {
	authTestInit(t)
	ctx := context.Background()

	_, email := createTestUser(t, ctx, "password123")
	svc := newTestAuthService()

	_, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	authTestInit(t)
	ctx := context.Background()

	svc := newTestAuthService()

	// Must be the same sentinel as a wrong password, not a not-found
	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginOAuthOnlyAccountRejectsPassword(t *testing.T) {
	authTestInit(t)
	ctx := context.Background()

	email := fmt.Sprintf("oauth-test-%d@example.com", time.Now().UnixNano())
	_, err := testAuthDB.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at)
		VALUES ($1, NULL, 'employee', 'google', $2, NOW(), NOW())
	`, email, fmt.Sprintf("google-%d", time.Now().UnixNano()))
	require.NoError(t, err)

	svc := newTestAuthService()

	_, err = svc.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	authTestInit(t)

	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
}
