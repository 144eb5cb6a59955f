package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidPlayer    = errors.New("player must be X or O")
	ErrUnknownObjective = errors.New("unknown objective")
	ErrNoAvailableMoves = errors.New("no available moves")
)
