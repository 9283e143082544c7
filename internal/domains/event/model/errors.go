package model

import "errors"

// Error codes
const (
	ErrCodeEventNotFound    = "EVT001"
	ErrCodeNotEventOwner    = "EVT002"
	ErrCodeInvalidEventDate = "EVT003"
	ErrCodeEventCodeTaken   = "EVT004"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrNotEventOwner    = errors.New("event belongs to another customer")
	ErrInvalidEventDate = errors.New("event date must be a valid YYYY-MM-DD date")
	ErrEventCodeTaken   = errors.New("event code already exists")
)
