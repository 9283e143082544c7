package model

import "errors"

// Error codes
const (
	ErrCodeEmailTaken         = "CUS001"
	ErrCodeInvalidCredentials = "CUS002"
	ErrCodeCustomerNotFound   = "CUS003"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCustomerNotFound   = errors.New("customer not found")
)
