package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Move errors
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidMoveType  = fmt.Errorf("%w: unsupported move input type", ErrInvalidMove)
	ErrInvalidMoveValue = fmt.Errorf("%w: unrecognized move", ErrInvalidMove)

	// Match errors
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchDecided        = errors.New("match has already been decided")
	ErrNilPlayer           = errors.New("player is required")
	ErrDuplicatePlayer     = errors.New("a player cannot play against themselves")
	ErrInvalidWinningScore = errors.New("winning score must be at least 1")
)
