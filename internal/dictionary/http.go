package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultAPIURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

var ErrUnexpectedStatus = errors.New("unexpected dictionary response status")

// HTTPOracle asks a dictionary API for the word's entry: 200 means the
// word exists, 404 means it does not.
type HTTPOracle struct {
	baseURL string
	client  *http.Client
}

func NewHTTPOracle(baseURL string, timeout time.Duration) *HTTPOracle {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}

	return &HTTPOracle{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (that *HTTPOracle) IsValidWord(ctx context.Context, word string) (bool, error) {
	endpoint := that.baseURL + url.PathEscape(strings.ToLower(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build dictionary request: %w", err)
	}

	resp, err := that.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to query dictionary: %w", err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}
