package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	validVerdict   = "1"
	invalidVerdict = "0"
)

// VerdictRepository caches dictionary answers per word.
type VerdictRepository interface {
	Get(ctx context.Context, word string) (valid, found bool, err error)
	Set(ctx context.Context, word string, valid bool, ttl time.Duration) error
}

type dbVerdict struct {
	client *redis.Client
}

func NewVerdictRepository(client *redis.Client) VerdictRepository {
	return &dbVerdict{
		client: client,
	}
}

func (that *dbVerdict) Get(ctx context.Context, word string) (bool, bool, error) {
	response, err := that.client.Get(ctx, verdictKey(word)).Result()

	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}

	if err != nil {
		return false, false, fmt.Errorf("failed to get verdict: %w", err)
	}

	return response == validVerdict, true, nil
}

func (that *dbVerdict) Set(ctx context.Context, word string, valid bool, ttl time.Duration) error {
	value := invalidVerdict
	if valid {
		value = validVerdict
	}

	if err := that.client.Set(ctx, verdictKey(word), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set verdict: %w", err)
	}

	return nil
}

func verdictKey(word string) string {
	return "verdict:" + strings.ToUpper(word)
}
