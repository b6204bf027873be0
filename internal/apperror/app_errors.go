package apperror

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrAlreadyOccupied = errors.New("position already occupied")
	ErrGameFinished    = errors.New("game is already finished")
	ErrInputClosed     = errors.New("input closed")
)
