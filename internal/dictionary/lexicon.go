package dictionary

import (
	"context"
	"fmt"
)

type lexicon interface {
	Contains(ctx context.Context, word string) (bool, error)
}

// LexiconOracle answers from a local word list.
type LexiconOracle struct {
	lexicon lexicon
}

func NewLexiconOracle(lexicon lexicon) *LexiconOracle {
	return &LexiconOracle{lexicon: lexicon}
}

func (that *LexiconOracle) IsValidWord(ctx context.Context, word string) (bool, error) {
	found, err := that.lexicon.Contains(ctx, word)
	if err != nil {
		return false, fmt.Errorf("failed to look up word in lexicon: %w", err)
	}

	return found, nil
}
