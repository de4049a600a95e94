// Package dictionary answers whether a word exists. Implementations may be
// slow or unreliable; callers decide how to treat errors.
package dictionary

import (
	"context"
	"sync"
)

type Oracle interface {
	IsValidWord(ctx context.Context, word string) (bool, error)
}

type Verdict struct {
	Word  string
	Valid bool
	Err   error
}

// ValidateAll looks every word up concurrently. Verdicts keep the order of words.
func ValidateAll(ctx context.Context, oracle Oracle, words []string) []Verdict {
	verdicts := make([]Verdict, len(words))

	var wg sync.WaitGroup
	for i, word := range words {
		wg.Add(1)
		go func() {
			defer wg.Done()

			valid, err := oracle.IsValidWord(ctx, word)
			verdicts[i] = Verdict{Word: word, Valid: valid, Err: err}
		}()
	}
	wg.Wait()

	return verdicts
}
