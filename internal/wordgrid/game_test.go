package wordgrid

import (
	"testing"

	"github.com/rocketscienceinc/wordboard-backend/internal/apperror"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(rack ...string) entity.Game {
	return *entity.NewGame("123", boardSize, rack)
}

func TestApplyPlacement(t *testing.T) {
	t.Run("Places a rack letter on the board", func(t *testing.T) {
		// Given: a new game with C, A, T on the rack
		game := newTestGame("C", "A", "T")

		// When: C is placed in the middle of the board
		next, err := ApplyPlacement(game, entity.Placement{Row: 7, Col: 7, Letter: "c"})
		require.NoError(t, err)

		// Then: the board holds the uppercased letter and the rack lost one tile
		assert.Equal(t, "C", next.Board[7][7])
		assert.Equal(t, []string{"A", "T"}, next.Rack)

		// And: the original game is unchanged
		assert.Equal(t, entity.EmptyCell, game.Board[7][7])
		assert.Equal(t, []string{"C", "A", "T"}, game.Rack)
	})

	t.Run("Removes only one copy of a repeated letter", func(t *testing.T) {
		game := newTestGame("A", "B", "A")

		next, err := ApplyPlacement(game, entity.Placement{Row: 0, Col: 0, Letter: "A"})
		require.NoError(t, err)

		assert.Equal(t, []string{"B", "A"}, next.Rack)
	})

	t.Run("Rejections", func(t *testing.T) {
		base := newTestGame("C", "A", "T", "S")
		base.Board[7][7] = "Q"
		base.Locked[7][7] = true
		base.Board[3][3] = "X"

		submitting := newTestGame("C")
		submitting.Status = entity.StatusSubmitting

		tests := []struct {
			name      string
			game      entity.Game
			placement entity.Placement
			expected  error
		}{
			{"submission in progress", submitting, entity.Placement{Row: 0, Col: 0, Letter: "C"}, apperror.ErrSubmissionInProgress},
			{"row out of range", base, entity.Placement{Row: boardSize, Col: 0, Letter: "C"}, apperror.ErrInvalidCell},
			{"negative column", base, entity.Placement{Row: 0, Col: -1, Letter: "C"}, apperror.ErrInvalidCell},
			{"empty letter", base, entity.Placement{Row: 0, Col: 0, Letter: ""}, apperror.ErrInvalidLetter},
			{"two letters", base, entity.Placement{Row: 0, Col: 0, Letter: "CA"}, apperror.ErrInvalidLetter},
			{"digit", base, entity.Placement{Row: 0, Col: 0, Letter: "1"}, apperror.ErrInvalidLetter},
			{"locked cell", base, entity.Placement{Row: 7, Col: 7, Letter: "C"}, apperror.ErrCellLocked},
			{"occupied cell", base, entity.Placement{Row: 3, Col: 3, Letter: "C"}, apperror.ErrCellOccupied},
			{"letter not in rack", base, entity.Placement{Row: 0, Col: 0, Letter: "Z"}, apperror.ErrLetterNotInRack},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				next, err := ApplyPlacement(tt.game, tt.placement)

				require.ErrorIs(t, err, tt.expected)
				assert.Equal(t, tt.game, next)
			})
		}
	})
}

func TestApplyPlacement_SubmissionInProgressIsNotWrapped(t *testing.T) {
	game := newTestGame("C")
	game.Status = entity.StatusSubmitting

	_, err := ApplyPlacement(game, entity.Placement{Row: 0, Col: 0, Letter: "C"})

	assert.Equal(t, apperror.ErrSubmissionInProgress, err)
	assert.Equal(t, "submission is in progress", err.Error())
}

func TestApplyRemoval(t *testing.T) {
	t.Run("Returns an unlocked letter to the rack", func(t *testing.T) {
		// Given: a game with an unlocked letter on the board
		game := newTestGame("A")
		game.Board[7][7] = "C"

		// When: the letter is removed
		next, letter, err := ApplyRemoval(game, 7, 7)
		require.NoError(t, err)

		// Then: the cell is empty and the letter is back on the rack
		assert.Equal(t, "C", letter)
		assert.Equal(t, entity.EmptyCell, next.Board[7][7])
		assert.Equal(t, []string{"A", "C"}, next.Rack)
		assert.Equal(t, "C", game.Board[7][7])
	})

	t.Run("Rejections", func(t *testing.T) {
		game := newTestGame()
		game.Board[7][7] = "C"
		game.Locked[7][7] = true

		submitting := newTestGame()
		submitting.Board[1][1] = "A"
		submitting.Status = entity.StatusSubmitting

		_, _, err := ApplyRemoval(game, 7, 7)
		require.ErrorIs(t, err, apperror.ErrCellLocked)

		_, _, err = ApplyRemoval(game, 0, 0)
		require.ErrorIs(t, err, apperror.ErrCellEmpty)

		_, _, err = ApplyRemoval(game, -1, 0)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, _, err = ApplyRemoval(submitting, 1, 1)
		require.ErrorIs(t, err, apperror.ErrSubmissionInProgress)
	})
}

func TestApplyAcceptance(t *testing.T) {
	// Given: CAT across and CS down, with nothing locked yet
	game := newTestGame()
	game.Score = 3
	placeWord(game.Board, "CAT", entity.Horizontal, 7, 7)
	game.Board[8][7] = "S"
	game.Board[0][0] = "Q"
	candidates := Scan(game.Board, game.Locked)
	require.Len(t, candidates, 2)

	// When: the candidates are accepted
	next, scored := ApplyAcceptance(game, candidates)

	// Then: exactly the candidate cells are locked
	for row := range next.Board {
		for col := range next.Board[row] {
			inWord := candidates[0].Contains(row, col) || candidates[1].Contains(row, col)
			assert.Equal(t, inWord, next.Locked[row][col], "cell (%d,%d)", row, col)
		}
	}

	// And: the points are added to the score
	assert.Equal(t, []entity.ScoredWord{{Word: "CAT", Points: 5}, {Word: "CS", Points: 4}}, scored)
	assert.Equal(t, 12, next.Score)

	// And: no candidates remain to submit, the isolated letter stays unlocked
	assert.Empty(t, Scan(next.Board, next.Locked))
	assert.False(t, next.Locked[0][0])

	// And: the input game is unchanged
	assert.False(t, game.Locked[7][7])
	assert.Equal(t, 3, game.Score)
}

func TestApplyRejection(t *testing.T) {
	// Given: a locked word and three unlocked letters
	game := newTestGame("E")
	placeWord(game.Board, "CAT", entity.Horizontal, 7, 7)
	lockRun(game.Locked, 3, entity.Horizontal, 7, 7)
	game.Board[7][10] = "S"
	game.Board[2][2] = "X"
	game.Board[8][7] = "O"

	// When: the submission is rejected
	next, returned := ApplyRejection(game)

	// Then: unlocked letters return to the rack in row-major order
	assert.Equal(t, []string{"X", "S", "O"}, returned)
	assert.Equal(t, []string{"E", "X", "S", "O"}, next.Rack)

	// And: locked letters stay, unlocked cells are cleared
	assert.Equal(t, "CAT", next.Board[7][7]+next.Board[7][8]+next.Board[7][9])
	assert.True(t, next.Board.IsEmpty(7, 10))
	assert.True(t, next.Board.IsEmpty(2, 2))
	assert.True(t, next.Board.IsEmpty(8, 7))
	assert.Equal(t, "S", game.Board[7][10])
}
