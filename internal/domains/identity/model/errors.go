package model

import "errors"

// Error codes
const (
	ErrCodeMalformedCredential = "IDN001"
	ErrCodeExpiredCredential   = "IDN002"
	ErrCodeRoleMismatch        = "IDN003"
	ErrCodeMissingCredential   = "IDN004"
)

var (
	ErrMalformedCredential = errors.New("credential claims cannot be decoded")
	ErrExpiredCredential   = errors.New("credential has expired")
	ErrRoleMismatch        = errors.New("credential role does not match requested channel")
	ErrMissingCredential   = errors.New("no credential supplied")
)
