package entity

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Cell is a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WordCandidate is a run of two or more letters along one axis.
// Index is the fixed row (Horizontal) or column (Vertical); Start and End
// are inclusive positions along the other axis.
type WordCandidate struct {
	Word        string      `json:"word"`
	Orientation Orientation `json:"orientation"`
	Index       int         `json:"index"`
	Start       int         `json:"start"`
	End         int         `json:"end"`
}

func (that WordCandidate) Len() int {
	return that.End - that.Start + 1
}

// Cells lists the board coordinates covered by the candidate, in reading order.
func (that WordCandidate) Cells() []Cell {
	cells := make([]Cell, 0, that.Len())
	for pos := that.Start; pos <= that.End; pos++ {
		if that.Orientation == Horizontal {
			cells = append(cells, Cell{Row: that.Index, Col: pos})
		} else {
			cells = append(cells, Cell{Row: pos, Col: that.Index})
		}
	}

	return cells
}

func (that WordCandidate) Contains(row, col int) bool {
	if that.Orientation == Horizontal {
		return row == that.Index && col >= that.Start && col <= that.End
	}

	return col == that.Index && row >= that.Start && row <= that.End
}

type ScoredWord struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}
