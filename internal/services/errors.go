package services

import "errors"

var (
	// ErrAuthRequired means no authenticated actor was attached to the
	// call. Mutating operations fail with it before touching the database.
	ErrAuthRequired = errors.New("authentication required")

	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrTitleRequired   = errors.New("title is required")

	// ErrMoveInFlight is returned when a board move arrives while another
	// one is still committing. The second move is discarded, not queued.
	ErrMoveInFlight = errors.New("another move is in flight")

	// ErrSelfLink rejects a task being related to itself.
	ErrSelfLink = errors.New("cannot relate a task to itself")
)
