package entity

const (
	StatusPlaying    = "playing"
	StatusSubmitting = "submitting"
)

type Game struct {
	ID     string   `json:"id"`
	Board  Grid     `json:"board"`
	Locked LockMask `json:"locked"`
	Rack   []string `json:"rack"`
	Score  int      `json:"score"`
	Status string   `json:"status"`
}

// Placement is a request to put one rack letter on the board.
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

type SubmissionResult struct {
	Accepted bool         `json:"accepted"`
	Words    []ScoredWord `json:"words,omitempty"`
	Invalid  []string     `json:"invalid,omitempty"`
	Points   int          `json:"points"`
	Game     *Game        `json:"game"`
}

func NewGame(id string, size int, rack []string) *Game {
	return &Game{
		ID:     id,
		Board:  NewGrid(size),
		Locked: NewLockMask(size),
		Rack:   append([]string{}, rack...),
		Status: StatusPlaying,
	}
}

func (that *Game) IsSubmitting() bool {
	return that.Status == StatusSubmitting
}

func (that *Game) IsLocked(row, col int) bool {
	return that.Board.InBounds(row, col) && that.Locked[row][col]
}

// Clone returns a deep copy so transitions never share slices with their input.
func (that *Game) Clone() *Game {
	return &Game{
		ID:     that.ID,
		Board:  that.Board.Clone(),
		Locked: that.Locked.Clone(),
		Rack:   append([]string{}, that.Rack...),
		Score:  that.Score,
		Status: that.Status,
	}
}
