package model

import "errors"

// Common errors used across the application
var (
	// Role state errors
	ErrNotInitialized     = errors.New("registry is not initialized")
	ErrAlreadyInitialized = errors.New("registry is already initialized")

	// Authorization errors
	ErrUnauthorized = errors.New("caller is not authorized")

	// Game record errors
	ErrDuplicateGame = errors.New("game is already recorded")
	ErrInvalidRecord = errors.New("invalid game record")
	ErrGameNotFound  = errors.New("game not found")
)
