package user

import (
	"context"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuth(ctx context.Context, provider, providerID string) (User, error)
}
