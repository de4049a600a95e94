package dictionary

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockOracle struct {
	mock.Mock
}

func (m *mockOracle) IsValidWord(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}

type mockVerdictCache struct {
	mock.Mock
}

func (m *mockVerdictCache) Get(ctx context.Context, word string) (bool, bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *mockVerdictCache) Set(ctx context.Context, word string, valid bool, ttl time.Duration) error {
	args := m.Called(ctx, word, valid, ttl)
	return args.Error(0)
}

type mockLexicon struct {
	mock.Mock
}

func (m *mockLexicon) Contains(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}
