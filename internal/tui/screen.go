package tui

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/display"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Screen keeps what the game last asked to show. It is only touched from the
// bubbletea update loop, which is where every game action runs.
type Screen struct {
	board       entity.BoardSnapshot
	status      string
	statusColor string
	enabled     bool
}

func NewScreen() *Screen {
	return &Screen{}
}

func (that *Screen) Render(board entity.BoardSnapshot) {
	that.board = board
}

func (that *Screen) ShowTurn(player *entity.Player) {
	if player == nil {
		return
	}

	that.status = display.TurnMessage(player)
	that.statusColor = player.Color
}

func (that *Screen) ShowResult(player1, player2 *entity.Player) {
	that.status, that.statusColor = display.ResultMessage(player1, player2)
}

func (that *Screen) Enable() {
	that.enabled = true
}

func (that *Screen) Disable() {
	that.enabled = false
}

func (that *Screen) Board() entity.BoardSnapshot {
	return that.board
}

func (that *Screen) Status() (string, string) {
	return that.status, that.statusColor
}

func (that *Screen) Enabled() bool {
	return that.enabled
}
