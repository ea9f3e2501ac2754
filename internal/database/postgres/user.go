package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id::text, login_id, password_hash, name, age, refresh_token, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var refreshToken *string
	if err := row.Scan(&u.ID, &u.LoginID, &u.PasswordHash, &u.Name, &u.Age, &refreshToken, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	if refreshToken != nil {
		u.RefreshToken = *refreshToken
	}
	return &u, nil
}

// CreateUser inserts a new account
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	userUUID, err := parseUserUUID(user.ID)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO users (user_id, login_id, password_hash, name, age)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, userUUID, user.LoginID, user.PasswordHash, user.Name, user.Age).Scan(&user.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateLoginID, user.LoginID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateUser, err)
	}
	return nil
}

// GetUserByID finds a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userUUID))
}

// GetUserByLoginID finds a user by login id
func (r *UserRepository) GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE login_id = $1`, loginID))
}

// UpdateRefreshToken stores the user's current refresh token; "" clears it
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET refresh_token = NULLIF($2, '') WHERE user_id = $1`, userUUID, refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateToken, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
