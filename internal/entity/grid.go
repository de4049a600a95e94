package entity

const EmptyCell = ""

// Grid is a square board of letters indexed [row][col]. Empty cells hold EmptyCell.
type Grid [][]string

// LockMask marks cells whose letters are permanently committed.
type LockMask [][]bool

func NewGrid(size int) Grid {
	grid := make(Grid, size)
	for row := range grid {
		grid[row] = make([]string, size)
	}

	return grid
}

func NewLockMask(size int) LockMask {
	mask := make(LockMask, size)
	for row := range mask {
		mask[row] = make([]bool, size)
	}

	return mask
}

func (that Grid) Size() int {
	return len(that)
}

func (that Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that[row])
}

// At returns the letter at (row, col), or EmptyCell outside the board.
func (that Grid) At(row, col int) string {
	if !that.InBounds(row, col) {
		return EmptyCell
	}

	return that[row][col]
}

func (that Grid) IsEmpty(row, col int) bool {
	return that.At(row, col) == EmptyCell
}

func (that Grid) Clone() Grid {
	clone := make(Grid, len(that))
	for row := range that {
		clone[row] = make([]string, len(that[row]))
		copy(clone[row], that[row])
	}

	return clone
}

func (that LockMask) Size() int {
	return len(that)
}

func (that LockMask) Clone() LockMask {
	clone := make(LockMask, len(that))
	for row := range that {
		clone[row] = make([]bool, len(that[row]))
		copy(clone[row], that[row])
	}

	return clone
}
