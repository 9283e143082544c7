package model

import "errors"

// Error codes
const (
	ErrCodeGuestNotFound      = "GST001"
	ErrCodeGuestEmailTaken    = "GST002"
	ErrCodeInvalidCredentials = "GST003"
)

var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrGuestEmailTaken    = errors.New("email is already registered for this event")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
