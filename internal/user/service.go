package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/Armory_Go/internal/auth"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

var loginIDPattern = regexp.MustCompile(domain.LoginIDPattern)

// Service defines account operations
type Service interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, loginID, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// TokenIssuer issues and checks credentials for accounts
type TokenIssuer interface {
	IssueAccessToken(userID string) (string, error)
	IssueRefreshToken(userID string) (string, error)
	VerifyRefresh(token string) (auth.Identity, error)
}

// SignUpInput is the data needed to create an account
type SignUpInput struct {
	LoginID  string
	Password string
	Name     string
	Age      int
}

// TokenPair is returned by sign-in and refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type service struct {
	repo   repository.User
	tokens TokenIssuer
}

// NewService creates a new account service
func NewService(repo repository.User, tokens TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (in SignUpInput) validate() error {
	if !loginIDPattern.MatchString(in.LoginID) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidLoginID)
	}
	if utf8.RuneCountInString(in.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidPassword)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidName)
	}
	if in.Age < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidAge)
	}
	return nil
}

// SignUp creates an account. The login id must be unused.
func (s *service) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if err := input.validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		LoginID:      input.LoginID,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Age:          input.Age,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.Info(LogMsgUserSignedUp, "user_id", user.ID, "login_id", user.LoginID)
	return user, nil
}

// SignIn checks credentials and returns a fresh access token. The stored
// refresh token is reused while it is still valid.
func (s *service) SignIn(ctx context.Context, loginID, password string) (*TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}

	access, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refresh := user.RefreshToken
	if id, verr := s.tokens.VerifyRefresh(refresh); verr != nil || id.UserID != user.ID {
		refresh, err = s.tokens.IssueRefreshToken(user.ID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
			return nil, err
		}
		log.Debug(LogMsgRefreshTokenIssued, "user_id", user.ID)
	}

	log.Info(LogMsgUserSignedIn, "user_id", user.ID)
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The token
// must match the one stored for its user.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.ErrTokenMissing
	}

	id, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown user", domain.ErrTokenInvalid)
		}
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("%w: refresh token was replaced", domain.ErrTokenInvalid)
	}

	access, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgAccessTokenRefreshed, "user_id", user.ID)
	return &TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}
