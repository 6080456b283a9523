package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/auth"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/user"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	id, email, password_hash, role, oauth_provider, oauth_provider_id,
	employee_id, created_at, updated_at`

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.OAuthProvider, &u.OAuthProviderID,
		&u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetByOAuth implements user.UserRepository.
func (r *userRepositoryImpl) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + userColumns + `
		FROM users
		WHERE oauth_provider = $1
		  AND oauth_provider_id = $2
	`

	var u user.User
	err := q.QueryRow(ctx, query, provider, providerID).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.OAuthProvider, &u.OAuthProviderID,
		&u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by oauth identity: %w", err)
	}

	return u, nil
}
