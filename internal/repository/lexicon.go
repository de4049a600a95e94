package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// LexiconRepository is a word list stored in SQLite. Words are kept upper-case.
type LexiconRepository interface {
	Load(ctx context.Context, words []string) error
	Contains(ctx context.Context, word string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type lexiconRepository struct {
	conn *sql.DB
}

func NewLexiconRepository(conn *sql.DB) LexiconRepository {
	return &lexiconRepository{
		conn: conn,
	}
}

func (that *lexiconRepository) Load(ctx context.Context, words []string) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("can't prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range words {
		if _, err = stmt.ExecContext(ctx, strings.ToUpper(word)); err != nil {
			return fmt.Errorf("can't insert word %q: %w", word, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit words: %w", err)
	}

	return nil
}

func (that *lexiconRepository) Contains(ctx context.Context, word string) (bool, error) {
	query := `SELECT 1 FROM words WHERE word = ?`

	var found int
	err := that.conn.QueryRowContext(ctx, query, strings.ToUpper(word)).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't find word: %w", err)
	}

	return true, nil
}

func (that *lexiconRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := that.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count words: %w", err)
	}

	return count, nil
}
