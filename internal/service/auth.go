package service

import (
	"errors"
	"fmt"

	"backend/internal/crypto"
	"backend/internal/models"
	"backend/internal/repository"
	"backend/internal/token"

	"go.uber.org/zap"
)

var ( // Define custom errors
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Signup(name, email, password string) (*models.User, string, error) // Returns user, session token, and error
	Login(email, password string) (*models.User, string, error)
}

type authService struct {
	repo   repository.UserRepository
	codec  *token.Codec
	logger *zap.Logger
}

func NewAuthService(repo repository.UserRepository, codec *token.Codec, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		codec:  codec,
		logger: logger,
	}
}

func (s *authService) Signup(name, email, password string) (*models.User, string, error) {
	// Check if a user with this email already exists
	_, err := s.repo.GetUserByEmail(email)
	if err == nil {
		return nil, "", ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to look up user by email", zap.Error(err))
		return nil, "", fmt.Errorf("failed to check existing users: %w", err)
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.CreateUser(user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	// Auto-login: the fresh account gets a session token right away
	tokenString, err := s.codec.Sign(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User signed up successfully.", zap.String("email", user.Email))

	return user, tokenString, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same error as a wrong password, so callers can't probe which emails exist
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !crypto.VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	tokenString, err := s.codec.Sign(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.String("email", user.Email))

	return user, tokenString, nil
}
