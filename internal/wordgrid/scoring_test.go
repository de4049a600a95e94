package wordgrid

import (
	"testing"

	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestScoreWord(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{word: "QUIZ", expected: 22},
		{word: "quiz", expected: 22},
		{word: "CAT", expected: 5},
		{word: "DOG", expected: 5},
		{word: "JAX", expected: 17},
		{word: "", expected: 0},
		{word: "A-B", expected: 4},
		{word: "ÉTÉ", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreWord(tt.word))
		})
	}
}

func TestScoreWords(t *testing.T) {
	t.Run("Sums the words", func(t *testing.T) {
		assert.Equal(t, 10, ScoreWords([]string{"CAT", "DOG"}))
	})

	t.Run("Empty list scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ScoreWords(nil))
	})

	t.Run("Score is additive", func(t *testing.T) {
		words := []string{"QUIZ", "CAT", "zebra", "HELLO", "X", "", "box"}
		for _, a := range words {
			for _, b := range words {
				assert.Equal(t, ScoreWord(a)+ScoreWord(b), ScoreWords([]string{a, b}))
			}
		}
	})
}

func TestLetterPoints(t *testing.T) {
	table := map[int]string{
		1:  "AEIOULNSTR",
		2:  "DG",
		3:  "BCMP",
		4:  "FHVWY",
		5:  "K",
		8:  "JX",
		10: "QZ",
	}

	covered := 0
	for points, letters := range table {
		for _, letter := range letters {
			assert.Equal(t, points, LetterPoints(letter), string(letter))
			assert.Equal(t, points, LetterPoints(letter+'a'-'A'), string(letter))
			covered++
		}
	}

	assert.Equal(t, 26, covered)
	assert.Zero(t, LetterPoints('?'))
}

func TestScoreCandidates(t *testing.T) {
	candidates := []entity.WordCandidate{
		{Word: "CAT", Orientation: entity.Horizontal, Index: 7, Start: 7, End: 9},
		{Word: "CS", Orientation: entity.Vertical, Index: 7, Start: 7, End: 8},
	}

	scored := ScoreCandidates(candidates)

	assert.Equal(t, []entity.ScoredWord{{Word: "CAT", Points: 5}, {Word: "CS", Points: 4}}, scored)
}
