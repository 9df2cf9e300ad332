package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cardswipe/internal/config"
	"github.com/jask/cardswipe/internal/database"
	"github.com/jask/cardswipe/internal/logging"
	"github.com/jask/cardswipe/internal/service"
	"github.com/jask/cardswipe/internal/tui"
)

const usage = `usage:
  cardswipe [play] [deck name]         play a deck (default from config deck.name)
  cardswipe decks                      list stored decks
  cardswipe import <file.json> [name]  import a JSON array of {id, question, answer}
`

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintln(os.Stderr, nf.Error())
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cmd := "play"
	if len(args) > 0 {
		switch args[0] {
		case "play", "decks", "import":
			cmd, args = args[0], args[1:]
		case "-h", "--help", "help":
			fmt.Print(usage)
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closer.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	library := service.NewLibraryService(db)

	switch cmd {
	case "decks":
		return listDecks(ctx, library)
	case "import":
		return importDeck(ctx, library, args)
	}

	name := cfg.Deck.Name
	if len(args) > 0 {
		name = strings.Join(args, " ")
	}
	d, err := library.Load(ctx, name)
	if err != nil {
		return err
	}
	logger.Info("starting session", "deck", d.Name, "cards", d.Len())
	p := tea.NewProgram(tui.New(d, cfg.Options(), cfg.UI.FPS, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func listDecks(ctx context.Context, library *service.LibraryService) error {
	decks, err := library.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCARDS\tCREATED")
	for _, d := range decks {
		fmt.Fprintf(w, "%s\t%d\t%s\n", d.Name, d.CardCount, d.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func importDeck(ctx context.Context, library *service.LibraryService, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("import: file required")
	}
	path := args[0]
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(args) > 1 {
		name = strings.Join(args[1:], " ")
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := library.ImportJSON(ctx, name, f)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "skipped: %v\n", e)
	}
	fmt.Printf("imported %d cards into %q (%d skipped)\n", res.Imported, res.DeckName, res.Skipped)
	return nil
}
