// Package wordgrid is the board engine: it finds candidate words, decides
// whether a letter may be placed, scores words and applies game transitions.
// Scan, CanPlace and the scoring functions never modify their arguments.
package wordgrid

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/wordboard-backend/internal/apperror"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
)

const minWordLength = 2

type runKey struct {
	orientation entity.Orientation
	index       int
	start       int
}

// Scan returns every run of two or more letters that has at least one
// unlocked cell. Each run is reported once, in discovery order: row-major
// over the cells, horizontal before vertical.
func Scan(grid entity.Grid, locked entity.LockMask) []entity.WordCandidate {
	mustMatch(grid, locked)

	var candidates []entity.WordCandidate
	seen := make(map[runKey]struct{})

	for row := range grid {
		for col := range grid[row] {
			if grid.IsEmpty(row, col) {
				continue
			}

			for _, orientation := range []entity.Orientation{entity.Horizontal, entity.Vertical} {
				candidate, ok := runAt(grid, row, col, orientation)
				if !ok {
					continue
				}

				key := runKey{orientation: orientation, index: candidate.Index, start: candidate.Start}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				if hasUnlockedCell(candidate, locked) {
					candidates = append(candidates, candidate)
				}
			}
		}
	}

	return candidates
}

// runAt extracts the maximal run through (row, col). ok is false for runs
// shorter than minWordLength.
func runAt(grid entity.Grid, row, col int, orientation entity.Orientation) (entity.WordCandidate, bool) {
	at := func(pos int) string {
		if orientation == entity.Horizontal {
			return grid.At(row, pos)
		}
		return grid.At(pos, col)
	}

	index, pos := row, col
	if orientation == entity.Vertical {
		index, pos = col, row
	}

	if at(pos) == entity.EmptyCell {
		return entity.WordCandidate{}, false
	}

	start := pos
	for at(start-1) != entity.EmptyCell {
		start--
	}

	var word strings.Builder
	end := start
	for ; at(end) != entity.EmptyCell; end++ {
		word.WriteString(at(end))
	}
	end--

	if end-start+1 < minWordLength {
		return entity.WordCandidate{}, false
	}

	return entity.WordCandidate{
		Word:        word.String(),
		Orientation: orientation,
		Index:       index,
		Start:       start,
		End:         end,
	}, true
}

func hasUnlockedCell(candidate entity.WordCandidate, locked entity.LockMask) bool {
	for _, cell := range candidate.Cells() {
		if !locked[cell.Row][cell.Col] {
			return true
		}
	}

	return false
}

// mustMatch panics unless grid and mask are equal, non-empty squares.
func mustMatch(grid entity.Grid, locked entity.LockMask) {
	size := grid.Size()
	if size < 1 || locked.Size() != size {
		panic(fmt.Errorf("%w: grid %d rows, mask %d rows", apperror.ErrDimensionMismatch, size, locked.Size()))
	}

	for row := range size {
		if len(grid[row]) != size || len(locked[row]) != size {
			panic(fmt.Errorf("%w: row %d is not %d wide", apperror.ErrDimensionMismatch, row, size))
		}
	}
}
