package display

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type multi []tictactoe.Display

// Multi fans every notification out to displays in order. Nil displays are skipped.
func Multi(displays ...tictactoe.Display) tictactoe.Display {
	targets := make(multi, 0, len(displays))
	for _, d := range displays {
		if d != nil {
			targets = append(targets, d)
		}
	}

	return targets
}

func (that multi) Render(board entity.BoardSnapshot) {
	for _, d := range that {
		d.Render(board)
	}
}

func (that multi) ShowTurn(player *entity.Player) {
	for _, d := range that {
		d.ShowTurn(player)
	}
}

func (that multi) ShowResult(player1, player2 *entity.Player) {
	for _, d := range that {
		d.ShowResult(player1, player2)
	}
}

func (that multi) Enable() {
	for _, d := range that {
		d.Enable()
	}
}

func (that multi) Disable() {
	for _, d := range that {
		d.Disable()
	}
}
