package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrCampusIDTaken      = errors.New("campus ID already registered")
	ErrNotVerified        = errors.New("please verify your email before logging in")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account temporarily locked due to failed login attempts")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
