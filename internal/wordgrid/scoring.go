package wordgrid

import (
	"strings"
	"unicode"

	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
)

var letterPoints = map[rune]int{
	'A': 1, 'E': 1, 'I': 1, 'O': 1, 'U': 1, 'L': 1, 'N': 1, 'S': 1, 'T': 1, 'R': 1,
	'D': 2, 'G': 2,
	'B': 3, 'C': 3, 'M': 3, 'P': 3,
	'F': 4, 'H': 4, 'V': 4, 'W': 4, 'Y': 4,
	'K': 5,
	'J': 8, 'X': 8,
	'Q': 10, 'Z': 10,
}

// LetterPoints returns the value of a single letter, case-insensitively.
// Characters outside A-Z are worth nothing.
func LetterPoints(letter rune) int {
	return letterPoints[unicode.ToUpper(letter)]
}

func ScoreWord(word string) int {
	score := 0
	for _, letter := range strings.ToUpper(word) {
		score += letterPoints[letter]
	}

	return score
}

func ScoreWords(words []string) int {
	total := 0
	for _, word := range words {
		total += ScoreWord(word)
	}

	return total
}

func ScoreCandidates(candidates []entity.WordCandidate) []entity.ScoredWord {
	scored := make([]entity.ScoredWord, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, entity.ScoredWord{
			Word:   candidate.Word,
			Points: ScoreWord(candidate.Word),
		})
	}

	return scored
}
