package model

import "errors"

// Error codes
const (
	ErrCodeImageNotFound    = "IMG001"
	ErrCodeNotImageOwner    = "IMG002"
	ErrCodeEditWindowClosed = "IMG003"
	ErrCodeWrongEvent       = "IMG004"
)

var (
	ErrImageNotFound    = errors.New("image not found")
	ErrNotImageOwner    = errors.New("image belongs to another guest")
	ErrEditWindowClosed = errors.New("modification window for this event has ended")
	ErrWrongEvent       = errors.New("image does not belong to this event")
)
