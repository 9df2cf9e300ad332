package database

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/cardswipe/internal/database/repository"
)

// StarterDeckName is the built-in deck seeded into new databases.
const StarterDeckName = "Go basics"

//go:embed seed/starter.json
var starterDeck []byte

// DeckID derives a stable id from a deck name.
func DeckID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("deck:"+name)).String()
}

// SeedDefaults ensures the starter deck exists.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	decks := repository.NewDeckRepo(db)
	existing, err := decks.ByName(ctx, StarterDeckName)
	if err != nil {
		return err
	}
	if existing != nil && existing.CardCount > 0 {
		return nil
	}
	var raw []struct {
		ID       int64  `json:"id"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal(starterDeck, &raw); err != nil {
		return fmt.Errorf("parse starter deck: %w", err)
	}
	id := DeckID(StarterDeckName)
	cards := make([]repository.Card, 0, len(raw))
	for _, c := range raw {
		cards = append(cards, repository.Card{ID: c.ID, Question: c.Question, Answer: c.Answer})
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := repository.NewDeckRepo(tx).Upsert(ctx, repository.Deck{ID: id, Name: StarterDeckName, CreatedAt: Now()}); err != nil {
			return fmt.Errorf("seed deck: %w", err)
		}
		return repository.NewCardRepo(tx).ReplaceForDeck(ctx, id, cards)
	})
}
