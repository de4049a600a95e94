package wordgrid

import (
	"fmt"

	"github.com/rocketscienceinc/wordboard-backend/internal/apperror"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
)

// CanPlace reports whether letter may go on the empty cell (row, col).
// A cell with no occupied orthogonal neighbour always accepts a letter;
// otherwise the letter must extend a horizontal or vertical run to at least
// two letters. Dictionary validity is checked at submission, not here.
func CanPlace(grid entity.Grid, row, col int, letter string, locked entity.LockMask) bool {
	mustMatch(grid, locked)

	if !grid.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d, %d) on a %d board", apperror.ErrCellOutOfRange, row, col, grid.Size()))
	}

	if !hasOccupiedNeighbor(grid, row, col) {
		return true
	}

	scratch := grid.Clone()
	scratch[row][col] = letter

	_, horizontal := runAt(scratch, row, col, entity.Horizontal)
	_, vertical := runAt(scratch, row, col, entity.Vertical)

	return horizontal || vertical
}

func hasOccupiedNeighbor(grid entity.Grid, row, col int) bool {
	return !grid.IsEmpty(row-1, col) ||
		!grid.IsEmpty(row+1, col) ||
		!grid.IsEmpty(row, col-1) ||
		!grid.IsEmpty(row, col+1)
}
