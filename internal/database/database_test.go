package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cardswipe/internal/database/repository"
)

func TestMigrateAndSeed(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	// second run is a no-op
	require.NoError(t, RunMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	decks, err := repository.NewDeckRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 1)
	require.Equal(t, StarterDeckName, decks[0].Name)
	require.Equal(t, DeckID(StarterDeckName), decks[0].ID)
	require.Equal(t, 8, decks[0].CardCount)

	cards, err := repository.NewCardRepo(db).ListForDeck(ctx, decks[0].ID)
	require.NoError(t, err)
	require.Len(t, cards, 8)
	for i, c := range cards {
		require.Equal(t, i, c.Position)
		require.Equal(t, int64(i+1), c.ID)
	}
}

func TestDeckIDStable(t *testing.T) {
	require.Equal(t, DeckID("spanish"), DeckID("spanish"))
	require.NotEqual(t, DeckID("spanish"), DeckID("french"))
}
