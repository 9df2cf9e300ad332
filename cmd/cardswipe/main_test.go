package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/cardswipe/internal/database"
	"github.com/jask/cardswipe/internal/service"
)

func TestRunReturnsErrorsAndReleasesDB(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CARDSWIPE_CONFIG", "")
	ctx := context.Background()

	file := filepath.Join(home, "capitals.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":1,"question":"Peru","answer":"Lima"}]`), 0o600))
	require.NoError(t, run(ctx, []string{"import", file}))
	require.NoError(t, run(ctx, []string{"decks"}))

	err := run(ctx, []string{"play", "capitols"})
	var nf *service.NotFoundError
	require.True(t, errors.As(err, &nf), "got %v", err)
	require.Contains(t, nf.Suggestions, "capitals")

	require.Error(t, run(ctx, []string{"import"}))

	// every run closed its handle; the library is still readable
	db, err := database.Open(filepath.Join(home, ".local", "share", "cardswipe", "cardswipe.db"))
	require.NoError(t, err)
	defer db.Close()
	decks, err := service.NewLibraryService(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 2)
}
