package deck

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("card index out of range")
	ErrEmptyDeck    = errors.New("deck has no cards")
	ErrDeckNotFound = errors.New("deck not found")
)

// Card is a single question/answer pair.
type Card struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Deck is an ordered, immutable set of cards. Insertion order is display order.
type Deck struct {
	ID    string
	Name  string
	cards []Card
}

// New copies cards into a deck. Card ids must be unique.
func New(id, name string, cards []Card) (Deck, error) {
	if len(cards) == 0 {
		return Deck{}, ErrEmptyDeck
	}
	seen := make(map[int64]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c.ID]; dup {
			return Deck{}, fmt.Errorf("duplicate card id %d", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return Deck{ID: id, Name: name, cards: out}, nil
}

func (d Deck) Len() int { return len(d.cards) }

// CardAt returns the card at index i.
func (d Deck) CardAt(i int) (Card, error) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(d.cards))
	}
	return d.cards[i], nil
}

// Cards returns a copy of the deck contents.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d Deck) contains(id int64) bool {
	for _, c := range d.cards {
		if c.ID == id {
			return true
		}
	}
	return false
}
