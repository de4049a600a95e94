package apperror

import "errors"

var (
	ErrGameNotFound         = errors.New("game not found")
	ErrSubmissionInProgress = errors.New("submission is in progress")
	ErrNoWords              = errors.New("no words found on the board")

	ErrInvalidCell      = errors.New("invalid cell")
	ErrInvalidLetter    = errors.New("invalid letter")
	ErrCellLocked       = errors.New("cell is locked")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellEmpty        = errors.New("cell is empty")
	ErrLetterNotInRack  = errors.New("letter is not in the rack")
	ErrInvalidPlacement = errors.New("letter must form a word with adjacent letters")

	// programming errors, raised as panics by the board engine
	ErrCellOutOfRange    = errors.New("cell out of range")
	ErrDimensionMismatch = errors.New("grid and lock mask dimensions mismatch")
)
