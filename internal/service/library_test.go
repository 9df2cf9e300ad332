package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cardswipe/internal/database"
	"github.com/jask/cardswipe/internal/deck"
)

func newLibrary(t *testing.T) *LibraryService {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return NewLibraryService(db)
}

func TestLoadStarterDeck(t *testing.T) {
	t.Parallel()

	lib := newLibrary(t)
	d, err := lib.Load(context.Background(), database.StarterDeckName)
	require.NoError(t, err)
	require.Equal(t, 8, d.Len())
	first, err := d.CardAt(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)
}

func TestLoadUnknownDeckSuggests(t *testing.T) {
	t.Parallel()

	lib := newLibrary(t)
	_, err := lib.Load(context.Background(), "go basic")
	require.Error(t, err)
	require.True(t, errors.Is(err, deck.ErrDeckNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, []string{database.StarterDeckName}, nf.Suggestions)
	require.Contains(t, err.Error(), "did you mean")
}

func TestSuggestNothingClose(t *testing.T) {
	t.Parallel()

	lib := newLibrary(t)
	sugg, err := lib.Suggest(context.Background(), "organic chemistry")
	require.NoError(t, err)
	require.Empty(t, sugg)
}

func TestImportJSON(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	lib := newLibrary(t)

	data := `[
		{"id": 4, "question": "2+2", "answer": "4"},
		{"question": "3+3", "answer": "6"},
		{"id": 4, "question": "dup", "answer": "x"},
		{"id": 9, "question": "", "answer": "blank"}
	]`
	res, err := lib.ImportJSON(ctx, "arithmetic", strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, res.Imported)
	require.Equal(t, 2, res.Skipped)
	require.Len(t, res.Errors, 2)

	d, err := lib.Load(ctx, "arithmetic")
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	second, err := d.CardAt(1)
	require.NoError(t, err)
	// numbered after the largest id in the file
	require.Equal(t, int64(10), second.ID)
	require.Equal(t, "3+3", second.Question)

	decks, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 2)
}

func TestImportJSONReplacesExisting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lib := newLibrary(t)
	_, err := lib.ImportJSON(ctx, "capitals", strings.NewReader(`[{"id":1,"question":"France","answer":"Paris"}]`))
	require.NoError(t, err)
	_, err = lib.ImportJSON(ctx, "capitals", strings.NewReader(`[{"id":1,"question":"Peru","answer":"Lima"},{"id":2,"question":"Chile","answer":"Santiago"}]`))
	require.NoError(t, err)

	d, err := lib.Load(ctx, "capitals")
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	require.Equal(t, database.DeckID("capitals"), d.ID)
}

func TestImportJSONEmpty(t *testing.T) {
	t.Parallel()

	lib := newLibrary(t)
	_, err := lib.ImportJSON(context.Background(), "empty", strings.NewReader(`[]`))
	require.ErrorIs(t, err, deck.ErrEmptyDeck)

	_, err = lib.ImportJSON(context.Background(), "broken", strings.NewReader(`{`))
	require.Error(t, err)
}

func TestSaveFailedCardWriteLeavesNoDeck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lib := newLibrary(t)
	_, err := lib.DB.ExecContext(ctx, `
	CREATE TRIGGER reject_cards BEFORE INSERT ON cards
	BEGIN SELECT RAISE(ABORT, 'cards are read-only'); END;`)
	require.NoError(t, err)

	_, err = lib.Save(ctx, "geography", []deck.Card{{ID: 1, Question: "Peru", Answer: "Lima"}})
	require.Error(t, err)

	row, err := lib.Decks.ByName(ctx, "geography")
	require.NoError(t, err)
	require.Nil(t, row)
	decks, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 1)
}

func TestSaveKeepsCreatedAtOnReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lib := newLibrary(t)
	starter, err := lib.Decks.ByName(ctx, database.StarterDeckName)
	require.NoError(t, err)

	saved, err := lib.Save(ctx, database.StarterDeckName, []deck.Card{{ID: 1, Question: "q", Answer: "a"}})
	require.NoError(t, err)
	require.Equal(t, starter.ID, saved.ID)
	require.True(t, starter.CreatedAt.Equal(saved.CreatedAt))
	require.Equal(t, 1, saved.CardCount)
}
