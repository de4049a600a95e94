package wordgrid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/wordboard-backend/internal/apperror"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
)

// ApplyPlacement puts a rack letter on the board and returns the new state.
// The input game is left untouched.
func ApplyPlacement(game entity.Game, placement entity.Placement) (entity.Game, error) {
	if game.IsSubmitting() {
		return game, apperror.ErrSubmissionInProgress
	}

	letter, err := validatePlacement(&game, placement)
	if err != nil {
		return game, fmt.Errorf("invalid placement: %w", err)
	}

	next := game.Clone()
	next.Board[placement.Row][placement.Col] = letter
	next.Rack = removeFromRack(next.Rack, letter)

	return *next, nil
}

// validatePlacement - checks the move and returns the normalized letter.
func validatePlacement(game *entity.Game, placement entity.Placement) (string, error) {
	if !game.Board.InBounds(placement.Row, placement.Col) {
		return "", fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, placement.Row, placement.Col)
	}

	letter, err := normalizeLetter(placement.Letter)
	if err != nil {
		return "", err
	}

	if game.IsLocked(placement.Row, placement.Col) {
		return "", apperror.ErrCellLocked
	}

	if !game.Board.IsEmpty(placement.Row, placement.Col) {
		return "", apperror.ErrCellOccupied
	}

	if !slices.Contains(game.Rack, letter) {
		return "", fmt.Errorf("%w: %s", apperror.ErrLetterNotInRack, letter)
	}

	if !CanPlace(game.Board, placement.Row, placement.Col, letter, game.Locked) {
		return "", apperror.ErrInvalidPlacement
	}

	return letter, nil
}

// ApplyRemoval takes an unlocked letter off the board and puts it back on the rack.
func ApplyRemoval(game entity.Game, row, col int) (entity.Game, string, error) {
	switch {
	case game.IsSubmitting():
		return game, "", apperror.ErrSubmissionInProgress
	case !game.Board.InBounds(row, col):
		return game, "", fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	case game.IsLocked(row, col):
		return game, "", apperror.ErrCellLocked
	case game.Board.IsEmpty(row, col):
		return game, "", apperror.ErrCellEmpty
	}

	next := game.Clone()
	letter := next.Board[row][col]
	next.Board[row][col] = entity.EmptyCell
	next.Rack = append(next.Rack, letter)

	return *next, letter, nil
}

// ApplyAcceptance locks every cell of the accepted candidates and adds their points to the score.
func ApplyAcceptance(game entity.Game, candidates []entity.WordCandidate) (entity.Game, []entity.ScoredWord) {
	next := game.Clone()

	for _, candidate := range candidates {
		for _, cell := range candidate.Cells() {
			if !next.Board.IsEmpty(cell.Row, cell.Col) {
				next.Locked[cell.Row][cell.Col] = true
			}
		}
	}

	scored := ScoreCandidates(candidates)
	for _, word := range scored {
		next.Score += word.Points
	}

	return *next, scored
}

// ApplyRejection clears every unlocked letter from the board and returns the
// letters, in row-major order, to the rack.
func ApplyRejection(game entity.Game) (entity.Game, []string) {
	next := game.Clone()

	var returned []string
	for row := range next.Board {
		for col := range next.Board[row] {
			if next.Board[row][col] == entity.EmptyCell || next.Locked[row][col] {
				continue
			}

			returned = append(returned, next.Board[row][col])
			next.Board[row][col] = entity.EmptyCell
		}
	}

	next.Rack = append(next.Rack, returned...)

	return *next, returned
}

func normalizeLetter(letter string) (string, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidLetter, letter)
	}

	return letter, nil
}

func removeFromRack(rack []string, letter string) []string {
	idx := slices.Index(rack, letter)
	if idx == -1 {
		return rack
	}

	return slices.Delete(rack, idx, idx+1)
}
