package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jask/cardswipe/internal/deck"
)

// ImportResult reports what an import stored.
type ImportResult struct {
	DeckName string
	Imported int
	Skipped  int
	Errors   []error
}

// ImportJSON reads a JSON array of {id, question, answer} objects and stores
// them as deck name. Entries with an empty question or answer, or a repeated
// id, are skipped and reported. Missing ids are numbered after the largest seen.
func (s *LibraryService) ImportJSON(ctx context.Context, name string, r io.Reader) (ImportResult, error) {
	res := ImportResult{DeckName: strings.TrimSpace(name)}
	var raw []struct {
		ID       *int64 `json:"id"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return res, fmt.Errorf("decode cards: %w", err)
	}
	var nextID int64
	for _, c := range raw {
		if c.ID != nil && *c.ID > nextID {
			nextID = *c.ID
		}
	}
	seen := make(map[int64]struct{}, len(raw))
	cards := make([]deck.Card, 0, len(raw))
	for i, c := range raw {
		q, a := strings.TrimSpace(c.Question), strings.TrimSpace(c.Answer)
		if q == "" || a == "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("entry %d: question and answer required", i+1))
			continue
		}
		var id int64
		if c.ID != nil {
			id = *c.ID
		} else {
			nextID++
			id = nextID
		}
		if _, dup := seen[id]; dup {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("entry %d: duplicate id %d", i+1, id))
			continue
		}
		seen[id] = struct{}{}
		cards = append(cards, deck.Card{ID: id, Question: q, Answer: a})
	}
	if len(cards) == 0 {
		return res, deck.ErrEmptyDeck
	}
	if _, err := s.Save(ctx, res.DeckName, cards); err != nil {
		return res, err
	}
	res.Imported = len(cards)
	return res, nil
}
