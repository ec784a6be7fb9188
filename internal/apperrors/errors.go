package apperrors

import "errors"

// Sentinel errors - Auth
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrUserNotFound       = errors.New("user not found")
)

// Sentinel errors - Bets
var (
	ErrBetNotFound = errors.New("bet not found")
	ErrInvalidBet  = errors.New("invalid bet parameters")
)
