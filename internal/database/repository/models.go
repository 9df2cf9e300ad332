package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so repos can run inside
// a caller's transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Deck represents a deck row.
type Deck struct {
	ID        string
	Name      string
	CreatedAt time.Time
	CardCount int
}

// Card represents a card row. ID is unique within its deck.
type Card struct {
	ID       int64
	DeckID   string
	Position int
	Question string
	Answer   string
}
