package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"sharpeguess/internal/config"
	"sharpeguess/internal/game"
	"sharpeguess/internal/store"
	"sharpeguess/internal/ui"
	"sharpeguess/internal/util"
)

func main() {
	guessing := flag.Bool("g", false, "enable guessing mode")
	flag.BoolVar(guessing, "guess", false, "enable guessing mode")
	flag.Parse()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	util.SetDefault(logger)

	var recorder store.Recorder = store.NewNoopRecorder()
	if cfg.History.Enabled && cfg.History.Path != "" {
		recorder, err = store.NewSQLiteRecorder(cfg.History.Path)
		if err != nil {
			log.Fatalf("failed to open round history: %v", err)
		}
	}
	defer recorder.Close()

	app, err := game.New(*guessing)
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}

	p := tea.NewProgram(ui.NewModel(app, recorder, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("ui error: %v", err)
	}
}
