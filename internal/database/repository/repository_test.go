package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cardswipe/internal/database"
	"github.com/jask/cardswipe/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func openRepos(t *testing.T) (*repository.DeckRepo, *repository.CardRepo) {
	t.Helper()
	db := openTestDB(t)
	return repository.NewDeckRepo(db), repository.NewCardRepo(db)
}

func TestDeckByNameMissing(t *testing.T) {
	decks, _ := openRepos(t)
	d, err := decks.ByName(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestReplaceForDeckKeepsOrder(t *testing.T) {
	ctx := context.Background()
	decks, cards := openRepos(t)
	require.NoError(t, decks.Upsert(ctx, repository.Deck{ID: "d1", Name: "capitals"}))

	require.NoError(t, cards.ReplaceForDeck(ctx, "d1", []repository.Card{
		{ID: 10, Question: "France", Answer: "Paris"},
		{ID: 3, Question: "Japan", Answer: "Tokyo"},
	}))
	require.NoError(t, cards.ReplaceForDeck(ctx, "d1", []repository.Card{
		{ID: 7, Question: "Peru", Answer: "Lima"},
		{ID: 10, Question: "France", Answer: "Paris"},
		{ID: 3, Question: "Japan", Answer: "Tokyo"},
	}))

	got, err := cards.ListForDeck(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []int64{7, 10, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})

	d, err := decks.ByName(ctx, "capitals")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, 3, d.CardCount)
}

func TestReplaceForDeckRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	decks, cards := repository.NewDeckRepo(db), repository.NewCardRepo(db)
	require.NoError(t, decks.Upsert(ctx, repository.Deck{ID: "d1", Name: "dup"}))
	require.NoError(t, cards.ReplaceForDeck(ctx, "d1", []repository.Card{{ID: 1, Question: "a", Answer: "b"}}))

	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repository.NewCardRepo(tx).ReplaceForDeck(ctx, "d1", []repository.Card{
			{ID: 2, Question: "q", Answer: "a"},
			{ID: 2, Question: "q", Answer: "a"},
		})
	})
	require.Error(t, err)

	// rolled back to the previous contents
	got, err := cards.ListForDeck(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
}

func TestUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	decks, _ := openRepos(t)
	created := database.Now().Add(-48 * time.Hour)
	require.NoError(t, decks.Upsert(ctx, repository.Deck{ID: "d1", Name: "old", CreatedAt: created}))
	require.NoError(t, decks.Upsert(ctx, repository.Deck{ID: "d1", Name: "renamed", CreatedAt: database.Now()}))

	d, err := decks.ByName(ctx, "renamed")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.True(t, created.Equal(d.CreatedAt), "got %v", d.CreatedAt)
}
