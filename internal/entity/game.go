package entity

// Marker is the symbol a player places on a cell.
type Marker string

const (
	MarkX     Marker = "X"
	MarkO     Marker = "O"
	EmptyCell Marker = ""
)

const (
	StatusAwaitingMove = "awaiting_move"
	StatusEvaluating   = "evaluating"
	StatusWon          = "won"
	StatusTied         = "tied"
)

// BoardSnapshot is a detached copy of the board, indexed [row-1][col-1].
type BoardSnapshot struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]Marker `json:"cells"`
}

// At returns the marker at the 1-based position, or EmptyCell when out of range.
func (that BoardSnapshot) At(row, col int) Marker {
	if row < 1 || row > that.Rows || col < 1 || col > that.Cols {
		return EmptyCell
	}

	return that.Cells[row-1][col-1]
}

// GameSnapshot is what transports hand out to clients.
type GameSnapshot struct {
	Board   BoardSnapshot `json:"board"`
	Player1 *Player       `json:"player1"`
	Player2 *Player       `json:"player2"`
	Turn    *Player       `json:"turn,omitempty"`
	Winner  *Player       `json:"winner,omitempty"`
	Status  string        `json:"status"`
}

func (that *GameSnapshot) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}
