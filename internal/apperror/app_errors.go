package apperror

import "errors"

var (
	ErrOutOfRange      = errors.New("board index out of bounds")
	ErrInvalidColor    = errors.New("invalid player color")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrScenarioFailed  = errors.New("scenario failed")
	ErrGameNotStarted  = errors.New("game is not started")
	ErrRedisDisabled   = errors.New("redis is disabled in the config")
)
