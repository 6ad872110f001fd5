package apperror

import "errors"

var (
	ErrNoActiveGame       = errors.New("no active game")
	ErrInvalidLayout      = errors.New("stored board layout is invalid")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrGameFinished       = errors.New("game is already finished")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
