package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid field configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrCannotRevealFlagged  = errors.New("cannot reveal flagged cell")
	ErrNoFlagsLeft          = errors.New("no flags left")
	ErrNoFlagToRemove       = errors.New("no flag to remove")
	ErrAlreadyPlaced        = errors.New("mines already placed")
)
