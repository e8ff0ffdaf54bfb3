package services

import (
	"context"
	"errors"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/models"
	"github.com/kbellil/interior-design-api/internal/password"
)

// Error variables
var (
	ErrEmailAlreadyExists    = errors.New("an account with this email already exists")
	ErrUsernameAlreadyExists = errors.New("this username is already taken")
	ErrInvalidCredentials    = errors.New("incorrect email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string) (int64, error)
}

// TokenGenerator defines an interface for issuing access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns a fresh access token. The email
// is checked before the username, so a request that conflicts on both
// reports the email conflict.
func (svc *AuthService) Register(ctx context.Context, email, username, pass string) (string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return "", ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return "", ErrUsernameAlreadyExists
	}

	hashed, err := password.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	id, err := svc.writer.Save(ctx, email, username, hashed)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}
	logger.Log.Infow("user registered", "user_id", id, "email", email)

	token, err := svc.jwt.Generate(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Login authenticates a user and returns an access token. A missing user
// and a wrong password produce the same error so callers cannot probe
// which emails are registered.
func (svc *AuthService) Login(ctx context.Context, email, pass string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || !password.Verify(pass, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
