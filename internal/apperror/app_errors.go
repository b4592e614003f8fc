package apperror

import "errors"

var (
	ErrInvalidBoard    = errors.New("invalid board")
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrInputRequired   = errors.New("a position is required on the human turn")
	ErrInvalidDepth    = errors.New("invalid tree depth")
	ErrInvalidRecord   = errors.New("invalid game record")
	ErrGameInProgress  = errors.New("game is still in progress")
)
