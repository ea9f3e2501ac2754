package repository

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// User defines the interface for account persistence
type User interface {
	// CreateUser assigns CreatedAt. Returns domain.ErrDuplicateLoginID.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
}
