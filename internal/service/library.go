package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/cardswipe/internal/database"
	"github.com/jask/cardswipe/internal/database/repository"
	"github.com/jask/cardswipe/internal/deck"
)

// LibraryService loads, lists and stores decks. Writes go through DB in a
// single transaction.
type LibraryService struct {
	DB    *sql.DB
	Decks *repository.DeckRepo
	Cards *repository.CardRepo
}

// NewLibraryService builds a library over db.
func NewLibraryService(db *sql.DB) *LibraryService {
	return &LibraryService{DB: db, Decks: repository.NewDeckRepo(db), Cards: repository.NewCardRepo(db)}
}

// NotFoundError carries close deck names for a failed lookup.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("deck %q not found", e.Name)
	}
	return fmt.Sprintf("deck %q not found, did you mean %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *NotFoundError) Unwrap() error { return deck.ErrDeckNotFound }

// Load returns the named deck ready for play.
func (s *LibraryService) Load(ctx context.Context, name string) (deck.Deck, error) {
	row, err := s.Decks.ByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return deck.Deck{}, fmt.Errorf("lookup deck: %w", err)
	}
	if row == nil {
		sugg, _ := s.Suggest(ctx, name)
		return deck.Deck{}, &NotFoundError{Name: name, Suggestions: sugg}
	}
	rows, err := s.Cards.ListForDeck(ctx, row.ID)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("list cards: %w", err)
	}
	cards := make([]deck.Card, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, deck.Card{ID: r.ID, Question: r.Question, Answer: r.Answer})
	}
	d, err := deck.New(row.ID, row.Name, cards)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("deck %q: %w", row.Name, err)
	}
	return d, nil
}

func (s *LibraryService) List(ctx context.Context) ([]repository.Deck, error) {
	return s.Decks.List(ctx)
}

// Suggest returns up to three stored deck names close to name.
func (s *LibraryService) Suggest(ctx context.Context, name string) ([]string, error) {
	decks, err := s.Decks.List(ctx)
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, d := range decks {
		have := strings.ToLower(d.Name)
		dist := levenshtein.ComputeDistance(want, have)
		limit := max(2, len(have)/3)
		if dist <= limit || (want != "" && strings.Contains(have, want)) {
			candidates = append(candidates, scored{name: d.Name, dist: dist})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	out := make([]string, 0, 3)
	for i := 0; i < len(candidates) && i < 3; i++ {
		out = append(out, candidates[i].name)
	}
	return out, nil
}

// Save stores cards under name, replacing any deck already using it.
func (s *LibraryService) Save(ctx context.Context, name string, cards []deck.Card) (repository.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return repository.Deck{}, fmt.Errorf("deck name required")
	}
	if _, err := deck.New("", name, cards); err != nil {
		return repository.Deck{}, err
	}
	row := repository.Deck{ID: database.DeckID(name), Name: name, CreatedAt: database.Now()}
	if existing, err := s.Decks.ByName(ctx, name); err != nil {
		return repository.Deck{}, err
	} else if existing != nil {
		row.ID, row.CreatedAt = existing.ID, existing.CreatedAt
	}
	rows := make([]repository.Card, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, repository.Card{ID: c.ID, Question: c.Question, Answer: c.Answer})
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := repository.NewDeckRepo(tx).Upsert(ctx, row); err != nil {
			return fmt.Errorf("upsert deck: %w", err)
		}
		return repository.NewCardRepo(tx).ReplaceForDeck(ctx, row.ID, rows)
	})
	if err != nil {
		return repository.Deck{}, err
	}
	row.CardCount = len(rows)
	return row, nil
}
