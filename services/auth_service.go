package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"parley/auth"
	"parley/contract"
	"parley/errors"
)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (Token, error)
	Register(ctx context.Context, email, username, password string) (Token, error)
	Authenticate(ctx context.Context, token string) (userID, username string, err error)
}

type Token string

type AuthService struct {
	users         contract.UserStore
	tokenDuration time.Duration
}

func NewAuthService(users contract.UserStore, tokenDuration time.Duration) IAuthService {
	return &AuthService{users: users, tokenDuration: tokenDuration}
}

func (s *AuthService) Register(ctx context.Context, email, username, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	}

	// Business rules (email format, password complexity) come before any
	// expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.users.CreateUser(ctx, email, username, hashedPassword)
	if err != nil {
		return "", err // propagates ErrUserAlreadyExists if email is taken
	}

	token, err := auth.GenerateToken(userID, username, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Token, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		// Generic error to prevent user enumeration attacks.
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

// Authenticate validates a handshake token and yields the identity bound to
// the connection for its whole lifetime. A store failure here is the one
// fatal condition of the handshake: nothing downstream can be authorized, so
// the caller must close the connection.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, string, error) {
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", errors.ErrAuthentication, err)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	switch {
	case err == nil:
		return user.ID, user.Username, nil
	case stderrors.Is(err, errors.ErrNotFound):
		return "", "", fmt.Errorf("%w: unknown user", errors.ErrAuthentication)
	default:
		return "", "", fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
}
