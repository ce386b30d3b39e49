package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/board"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const BoardSize = 3

type Game struct {
	logger  *slog.Logger
	board   *board.Board
	display Display

	player1     *entity.Player
	player2     *entity.Player
	player1Turn bool
	gameOver    bool
	status      string
}

// New - creates a game awaiting the first move of player1. Nothing is shown until NewGame.
func New(logger *slog.Logger, display Display, player1, player2 *entity.Player) *Game {
	return &Game{
		logger:      logger.With("component", "game"),
		board:       board.New(logger, BoardSize, BoardSize),
		display:     display,
		player1:     player1,
		player2:     player2,
		player1Turn: true,
		status:      entity.StatusAwaitingMove,
	}
}

// NewGame - starts a new game: empty board, no winner, player1 to move.
func (that *Game) NewGame() {
	that.board.Clear()
	that.player1.Winner = false
	that.player2.Winner = false
	that.gameOver = false
	that.status = entity.StatusAwaitingMove

	that.display.Render(that.board.Snapshot())

	// player1 always starts
	that.player1Turn = true
	that.display.ShowTurn(that.player1)
	that.display.Enable()

	that.logger.Debug("new game started", "player1", that.player1.Name, "player2", that.player2.Name)
}

// SetPlayers replaces both identities. The board and the turn are left alone.
func (that *Game) SetPlayers(player1, player2 *entity.Player) {
	that.player1 = player1
	that.player2 = player2
}

func (that *Game) Players() (*entity.Player, *entity.Player) {
	return that.player1, that.player2
}

// CurrentPlayer is the player to move, or nil once the game is over.
func (that *Game) CurrentPlayer() *entity.Player {
	if that.gameOver {
		return nil
	}

	return that.turnPlayer()
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) IsOver() bool {
	return that.gameOver
}

func (that *Game) Winner() *entity.Player {
	switch {
	case that.player1.Winner:
		return that.player1
	case that.player2.Winner:
		return that.player2
	default:
		return nil
	}
}

func (that *Game) Snapshot() entity.GameSnapshot {
	return entity.GameSnapshot{
		Board:   that.board.Snapshot(),
		Player1: that.player1.Clone(),
		Player2: that.player2.Clone(),
		Turn:    that.CurrentPlayer().Clone(),
		Winner:  that.Winner().Clone(),
		Status:  that.status,
	}
}

// PlayTurn - plays the current player's marker at (row, col).
// Moves on an occupied or missing cell leave the board and the turn untouched.
func (that *Game) PlayTurn(row, col int) MoveResult {
	log := that.logger.With("method", "PlayTurn", "row", row, "col", col)

	if that.gameOver {
		return MoveGameOver
	}

	player := that.turnPlayer()
	that.display.ShowTurn(player)

	if !that.board.IsEmptyAt(row, col) {
		that.display.Render(that.board.Snapshot())

		if !that.board.InBounds(row, col) {
			return MoveOutOfRange
		}

		log.Debug("cell already occupied")
		return MoveOccupied
	}

	if err := that.board.Place(row, col, player.Mark); err != nil {
		log.Error("failed to place marker", "error", err)
		return MoveOutOfRange
	}

	that.status = entity.StatusEvaluating

	if that.hasWon(row, col, player.Mark) {
		that.gameOver = true
		that.status = entity.StatusWon
		player.Winner = true

		that.finish()
		log.Info("game won", "player", player.Name)
		return MoveWon
	}

	if that.board.IsFull() {
		that.gameOver = true
		that.status = entity.StatusTied

		that.finish()
		log.Info("game tied")
		return MoveTied
	}

	that.player1Turn = !that.player1Turn
	that.status = entity.StatusAwaitingMove
	that.display.ShowTurn(that.turnPlayer())
	that.display.Render(that.board.Snapshot())

	return MovePlayed
}

func (that *Game) turnPlayer() *entity.Player {
	if that.player1Turn {
		return that.player1
	}

	return that.player2
}

func (that *Game) finish() {
	that.display.ShowResult(that.player1, that.player2)
	that.display.Render(that.board.Snapshot())
	that.display.Disable()
}

// hasWon - checks only the lines that pass through the played cell.
func (that *Game) hasWon(row, col int, mark entity.Marker) bool {
	rows, cols := that.board.Dimensions()

	if that.lineComplete(mark, cols, func(i int) (int, int) { return row, i }) {
		return true
	}

	if that.lineComplete(mark, rows, func(i int) (int, int) { return i, col }) {
		return true
	}

	// diagonals exist on square boards only
	if rows != cols {
		return false
	}

	if row == col && that.lineComplete(mark, rows, func(i int) (int, int) { return i, i }) {
		return true
	}

	// the centre of an odd board lies on both diagonals
	if row+col == rows+1 && that.lineComplete(mark, rows, func(i int) (int, int) { return rows + 1 - i, i }) {
		return true
	}

	return false
}

func (that *Game) lineComplete(mark entity.Marker, length int, cell func(i int) (int, int)) bool {
	for i := 1; i <= length; i++ {
		value, err := that.board.ValueAt(cell(i))
		if err != nil || value != mark {
			return false
		}
	}

	return true
}
