package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/calpick/core"
	"github.com/jask/calpick/internal/config"
	"github.com/jask/calpick/internal/database"
	"github.com/jask/calpick/internal/database/repository"
	"github.com/jask/calpick/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	// the alt screen owns stdout, so logs go to a file or nowhere
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "calpick")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app, err := tui.New(ctx, cfg, repository.NewBlockedDayRepo(db), loc)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(formatSelection(app.Selection()))
}

func formatSelection(c core.DatesChange) string {
	if !c.Range {
		if c.Date.IsZero() {
			return "no date selected"
		}
		return c.Date.String()
	}
	switch {
	case c.Start.IsZero() && c.End.IsZero():
		return "no range selected"
	case c.End.IsZero():
		return c.Start.String() + " (no end)"
	case c.Start.IsZero():
		return "(no start) " + c.End.String()
	default:
		return c.Start.String() + " " + c.End.String()
	}
}
