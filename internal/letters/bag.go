// Package letters draws rack tiles from a fixed letter distribution.
package letters

import (
	"math/rand/v2"
	"sync"
)

var frequencies = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
}

// Bag draws letters from the full distribution on every call; draws are
// not removed from later calls.
type Bag struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []string
}

func NewBag(src rand.Source) *Bag {
	return &Bag{
		rng:  rand.New(src),
		pool: buildPool(),
	}
}

// Draw shuffles the pool and returns its first count letters.
func (that *Bag) Draw(count int) []string {
	if count <= 0 {
		return []string{}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	count = min(count, len(that.pool))

	shuffled := append([]string{}, that.pool...)
	that.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count]
}

func PoolSize() int {
	total := 0
	for _, count := range frequencies {
		total += count
	}

	return total
}

// buildPool lays the tiles out alphabetically so a seeded source gives stable draws.
func buildPool() []string {
	pool := make([]string, 0, PoolSize())
	for letter := 'A'; letter <= 'Z'; letter++ {
		for range frequencies[letter] {
			pool = append(pool, string(letter))
		}
	}

	return pool
}
