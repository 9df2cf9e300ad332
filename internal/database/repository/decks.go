package repository

import (
	"context"
	"database/sql"
	"errors"
)

// DeckRepo handles decks.
type DeckRepo struct {
	db DBTX
}

func NewDeckRepo(db DBTX) *DeckRepo { return &DeckRepo{db: db} }

// Upsert inserts d or renames the existing row. created_at is only written
// on insert; a zero CreatedAt falls back to the database clock.
func (r *DeckRepo) Upsert(ctx context.Context, d Deck) error {
	var created any
	if !d.CreatedAt.IsZero() {
		created = d.CreatedAt
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO decks(id, name, created_at) VALUES (?, ?, COALESCE(?, CURRENT_TIMESTAMP))
	ON CONFLICT(id) DO UPDATE SET name=excluded.name;
	`, d.ID, d.Name, created)
	return err
}

// ByName returns nil, nil when no deck has that name.
func (r *DeckRepo) ByName(ctx context.Context, name string) (*Deck, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT d.id, d.name, d.created_at, (SELECT COUNT(*) FROM cards c WHERE c.deck_id = d.id)
	FROM decks d WHERE d.name = ?`, name)
	var d Deck
	if err := row.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.CardCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeckRepo) List(ctx context.Context) ([]Deck, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT d.id, d.name, d.created_at, (SELECT COUNT(*) FROM cards c WHERE c.deck_id = d.id)
	FROM decks d ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Deck
	for rows.Next() {
		var d Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.CardCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
