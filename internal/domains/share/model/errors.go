package model

import "errors"

// Error codes
const (
	ErrCodeShareNotFound         = "SHL001"
	ErrCodeShareExpired          = "SHL002"
	ErrCodeSharePasswordRequired = "SHL003"
	ErrCodeForbidden             = "SHL004"
	ErrCodeEmptySelection        = "SHL005"
	ErrCodeImageNotInEvent       = "SHL006"
	ErrCodeInvalidExpiry         = "SHL007"
	ErrCodeShareCodeTaken        = "SHL008"
)

var (
	ErrShareNotFound = errors.New("share link not found")
	ErrShareExpired  = errors.New("share link has expired")

	// ErrSharePasswordRequired covers both a missing and a wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrSharePasswordRequired = errors.New("password required")

	ErrForbidden       = errors.New("share links can only be managed by the event owner")
	ErrEmptySelection  = errors.New("share link needs at least one image")
	ErrImageNotInEvent = errors.New("all shared images must belong to the event")
	ErrInvalidExpiry   = errors.New("expiry must be in the future")
	ErrShareCodeTaken  = errors.New("share code already exists")
)
