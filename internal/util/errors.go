package util

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrInvalidQuestion    = errors.New("invalid question reference")
	ErrAlreadySubmitted   = errors.New("You have already submitted this quiz.")
)
