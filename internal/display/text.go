package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Text writes the board and status lines to a terminal or any writer.
type Text struct {
	w       io.Writer
	out     *termenv.Output
	enabled bool
}

func NewText(w io.Writer, opts ...termenv.OutputOption) *Text {
	return &Text{
		w:   w,
		out: termenv.NewOutput(w, opts...),
	}
}

func (that *Text) Enabled() bool {
	return that.enabled
}

func (that *Text) Render(board entity.BoardSnapshot) {
	var sb strings.Builder

	for row := 1; row <= board.Rows; row++ {
		cells := make([]string, 0, board.Cols)
		for col := 1; col <= board.Cols; col++ {
			mark := board.At(row, col)
			if mark == entity.EmptyCell {
				mark = " "
			}
			cells = append(cells, " "+string(mark)+" ")
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < board.Rows {
			sb.WriteString(strings.Repeat("-", board.Cols*4-1))
			sb.WriteString("\n")
		}
	}

	that.write(sb.String())
}

func (that *Text) ShowTurn(player *entity.Player) {
	if player == nil {
		return
	}

	that.write(that.styled(TurnMessage(player), player.Color).String() + "\n")
}

func (that *Text) ShowResult(player1, player2 *entity.Player) {
	text, color := ResultMessage(player1, player2)

	that.write(that.styled(text, color).Bold().String() + "\n")
}

func (that *Text) Enable() {
	that.enabled = true
}

func (that *Text) Disable() {
	that.enabled = false
}

func (that *Text) styled(text, color string) termenv.Style {
	style := that.out.String(text)
	if color == "" {
		return style
	}

	return style.Foreground(that.out.Color(color))
}

func (that *Text) write(s string) {
	// a broken writer only loses output
	_, _ = fmt.Fprint(that.w, s)
}
