package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

// Display receives game state changes. Calls are made synchronously from the game.
type Display interface {
	Render(board entity.BoardSnapshot)
	// ShowTurn gets nil when no player is to move.
	ShowTurn(player *entity.Player)
	ShowResult(player1, player2 *entity.Player)
	Enable()
	Disable()
}
