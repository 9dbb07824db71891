package domain

import "errors"

// Sentinel errors for watchlist operations
var (
	// ErrInvalidInput indicates a malformed title or episode total
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateTitle indicates the title is already in the watchlist
	ErrDuplicateTitle = errors.New("show is already in the watchlist")

	// ErrIndexOutOfRange indicates no show exists at the given position
	ErrIndexOutOfRange = errors.New("no show at that position")

	// ErrAlreadyComplete indicates every episode is already watched
	ErrAlreadyComplete = errors.New("show is already finished")

	// ErrNothingToUndo indicates the undo buffer is empty
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrPersistence indicates the watchlist could not be read or written
	ErrPersistence = errors.New("watchlist storage failed")
)
