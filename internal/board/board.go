// Package board holds the grid of cell states behind a 1-based, bounds-checked interface.
package board

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type Board struct {
	logger *slog.Logger

	rows  int
	cols  int
	cells [][]entity.Marker
}

// New - creates an empty rows x cols board.
func New(logger *slog.Logger, rows, cols int) *Board {
	cells := make([][]entity.Marker, rows)
	for i := range cells {
		cells[i] = make([]entity.Marker, cols)
	}

	return &Board{
		logger: logger.With("component", "board"),
		rows:   rows,
		cols:   cols,
		cells:  cells,
	}
}

func (that *Board) Dimensions() (int, int) {
	return that.rows, that.cols
}

// InBounds reports whether the 1-based position exists, without logging.
func (that *Board) InBounds(row, col int) bool {
	return row >= 1 && row <= that.rows && col >= 1 && col <= that.cols
}

// IsEmptyAt is false for out of range positions as well.
func (that *Board) IsEmptyAt(row, col int) bool {
	if err := that.checkIndex(row, col); err != nil {
		return false
	}

	return that.cells[row-1][col-1] == entity.EmptyCell
}

func (that *Board) ValueAt(row, col int) (entity.Marker, error) {
	if err := that.checkIndex(row, col); err != nil {
		return entity.EmptyCell, err
	}

	return that.cells[row-1][col-1], nil
}

// Place - writes marker into the cell; out of range is a no-op.
func (that *Board) Place(row, col int, marker entity.Marker) error {
	if err := that.checkIndex(row, col); err != nil {
		return err
	}

	that.cells[row-1][col-1] = marker

	return nil
}

func (that *Board) Clear() {
	for _, row := range that.cells {
		for i := range row {
			row[i] = entity.EmptyCell
		}
	}
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Snapshot() entity.BoardSnapshot {
	cells := make([][]entity.Marker, that.rows)
	for i, row := range that.cells {
		cells[i] = append([]entity.Marker(nil), row...)
	}

	return entity.BoardSnapshot{
		Rows:  that.rows,
		Cols:  that.cols,
		Cells: cells,
	}
}

// checkIndex - logs and reports positions outside [1,rows]x[1,cols].
func (that *Board) checkIndex(row, col int) error {
	if that.InBounds(row, col) {
		return nil
	}

	that.logger.Warn("board index out of bounds", "row", row, "col", col, "rows", that.rows, "cols", that.cols)

	return fmt.Errorf("%w: (%d, %d) outside %dx%d", apperror.ErrOutOfRange, row, col, that.rows, that.cols)
}
