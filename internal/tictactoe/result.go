package tictactoe

// MoveResult tells the caller what PlayTurn did with a move.
type MoveResult int

const (
	MovePlayed MoveResult = iota
	MoveWon
	MoveTied
	MoveOccupied
	MoveOutOfRange
	MoveGameOver
)

func (that MoveResult) String() string {
	switch that {
	case MovePlayed:
		return "played"
	case MoveWon:
		return "won"
	case MoveTied:
		return "tied"
	case MoveOccupied:
		return "occupied"
	case MoveOutOfRange:
		return "out_of_range"
	case MoveGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Accepted is true when the move changed the board.
func (that MoveResult) Accepted() bool {
	return that == MovePlayed || that == MoveWon || that == MoveTied
}
