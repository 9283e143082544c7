package model

import "errors"

// Error codes
const (
	ErrCodeInvalidCredentials = "ADM001"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)
