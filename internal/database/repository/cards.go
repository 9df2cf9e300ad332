package repository

import (
	"context"
	"fmt"
)

// CardRepo handles cards.
type CardRepo struct {
	db DBTX
}

func NewCardRepo(db DBTX) *CardRepo { return &CardRepo{db: db} }

// ReplaceForDeck swaps the deck's cards for cards, in order. It is not atomic
// on its own; run it on a repo built over a *sql.Tx.
func (r *CardRepo) ReplaceForDeck(ctx context.Context, deckID string, cards []Card) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, deckID); err != nil {
		return fmt.Errorf("clear cards: %w", err)
	}
	for i, c := range cards {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO cards(id, deck_id, position, question, answer)
		VALUES (?, ?, ?, ?, ?)`, c.ID, deckID, i, c.Question, c.Answer); err != nil {
			return fmt.Errorf("insert card %d: %w", c.ID, err)
		}
	}
	return nil
}

func (r *CardRepo) ListForDeck(ctx context.Context, deckID string) ([]Card, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, deck_id, position, question, answer
	FROM cards WHERE deck_id = ? ORDER BY position`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Position, &c.Question, &c.Answer); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
