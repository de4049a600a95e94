package wordgrid

import "github.com/rocketscienceinc/wordboard-backend/internal/entity"

const boardSize = 15

// placeWord writes word onto grid starting at (row, col).
func placeWord(grid entity.Grid, word string, orientation entity.Orientation, row, col int) {
	for i, letter := range word {
		if orientation == entity.Horizontal {
			grid[row][col+i] = string(letter)
		} else {
			grid[row+i][col] = string(letter)
		}
	}
}

func lockRun(locked entity.LockMask, length int, orientation entity.Orientation, row, col int) {
	for i := range length {
		if orientation == entity.Horizontal {
			locked[row][col+i] = true
		} else {
			locked[row+i][col] = true
		}
	}
}
