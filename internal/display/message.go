package display

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	tieText  = "It's a tie!"
	tieColor = "#000000"
)

// TurnMessage returns "" for no player.
func TurnMessage(player *entity.Player) string {
	if player == nil {
		return ""
	}

	return fmt.Sprintf("%s's Turn!", player.Name)
}

// ResultMessage returns the status line and its color for a finished game.
func ResultMessage(player1, player2 *entity.Player) (string, string) {
	switch {
	case player1 != nil && player1.Winner:
		return fmt.Sprintf("%s Wins!", player1.Name), player1.Color
	case player2 != nil && player2.Winner:
		return fmt.Sprintf("%s Wins!", player2.Name), player2.Color
	default:
		return tieText, tieColor
	}
}
