package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadWordFile loads one word per line. Blank lines and lines starting with
// '#' are skipped; words with anything but letters are dropped. Words are
// returned upper-case.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word := strings.ToUpper(line)
		if isAlpha(word) {
			words = append(words, word)
		}
	}

	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return words, nil
}

func isAlpha(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
