package service

import (
	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/auth"
	"binnacle_system/internal/domain"
	"binnacle_system/internal/repository"

	"github.com/sirupsen/logrus"
)

// AuthService orchestrates signup, login, logout and refresh-token rotation.
// A session exists exactly while the user row carries a refresh-token hash.
type AuthService struct {
	users  repository.UserRepository
	issuer *auth.Issuer
}

// NewAuthService builds an AuthService over its store and token issuer
func NewAuthService(users repository.UserRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Signup registers a new user and opens a session
func (s *AuthService) Signup(email, password, name string) (*auth.TokenPair, error) {
	taken, err := s.users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashSecret(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:    email,
		Name:     name,
		Password: hash,
		Role:     domain.RoleUser,
		Status:   domain.StatusActive,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User registered")
	return s.openSession(user.ID, user.Email)
}

// Login verifies credentials and opens a fresh session, invalidating any
// refresh token issued earlier
func (s *AuthService) Login(email, password string) (*auth.TokenPair, error) {
	user, err := s.users.FindByEmailWithSecret(email)
	if err != nil {
		// Unknown email and wrong password must be indistinguishable
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.VerifySecret(password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.openSession(user.ID, user.Email)
}

// Logout clears the stored refresh-token hash. Idempotent: a user with no
// active session logs out without error.
func (s *AuthService) Logout(userID uint) error {
	return s.users.UpdateRefreshTokenHash(userID, "")
}

// Refresh rotates the refresh token. The presented token must match the
// stored hash, and a successful call replaces that hash, so each refresh
// token works at most once.
func (s *AuthService) Refresh(userID uint, presented string) (*auth.TokenPair, error) {
	user, err := s.users.FindByIDWithSecret(userID)
	if err != nil {
		return nil, apperrors.ErrAccessDenied
	}
	if user.RefreshTokenHash == "" || !auth.VerifySecret(presented, user.RefreshTokenHash) {
		return nil, apperrors.ErrAccessDenied
	}
	return s.openSession(user.ID, user.Email)
}

// Profile returns the public user record, secret fields excluded
func (s *AuthService) Profile(userID uint) (*domain.User, error) {
	return s.users.FindByID(userID)
}

// openSession issues a token pair and stores the new refresh token's hash,
// fully replacing the previous one
func (s *AuthService) openSession(userID uint, email string) (*auth.TokenPair, error) {
	pair, err := s.issuer.IssuePair(userID, email)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashSecret(pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshTokenHash(userID, hash); err != nil {
		return nil, err
	}
	return pair, nil
}
