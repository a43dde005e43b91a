// Package ui renders the sharpeguess terminal interface and translates
// keyboard input into game events. It reads game state; all mutation goes
// through the game controller's event dispatch.
package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sharpeguess/internal/game"
	"sharpeguess/internal/store"
)

const historyLimit = 50

// Messages.
type tickMsg time.Time

type historyLoadedMsg struct {
	rounds []store.RoundRecord
	err    error
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model wraps the game controller for bubbletea.
type Model struct {
	app      *game.App
	recorder store.Recorder
	logger   *slog.Logger

	width, height int
	ready         bool

	// History overlay (recent answered rounds from the recorder).
	historyMode bool
	historyErr  error
	viewport    viewport.Model
}

// NewModel creates the UI model around an already-initialized game.
func NewModel(app *game.App, rec store.Recorder, logger *slog.Logger) Model {
	return Model{
		app:      app,
		recorder: rec,
		logger:   logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.historyMode {
			return m.updateHistory(msg)
		}
		return m.updateGame(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		return m, nil

	case tickMsg:
		// Heartbeat: no state change, just redraw.
		m.app.Handle(game.Event{Kind: game.EventHeartbeat})
		if !m.app.Running {
			return m, tea.Quit
		}
		return m, tickCmd()

	case historyLoadedMsg:
		m.historyErr = msg.err
		if msg.err == nil {
			m.viewport.SetContent(renderHistory(msg.rounds))
			m.viewport.GotoTop()
		}
		return m, nil
	}
	return m, nil
}

// updateGame translates a key press into a game event. One event is fully
// processed before the next key is read.
func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.app.Handle(game.Event{Kind: game.EventQuit})
		return m, tea.Quit
	case "r":
		m.app.Handle(game.Event{Kind: game.EventRecalculate})
		return m, nil
	case "n":
		m.app.Handle(game.Event{Kind: game.EventNextRound})
		return m, nil
	case "t":
		m.app.Handle(game.Event{Kind: game.EventToggleTarget})
		return m, nil
	case "h":
		m.historyMode = true
		m.historyErr = nil
		m.viewport.SetContent("Loading...")
		return m, m.loadHistoryCmd()
	case "enter":
		return m.submit()
	case "backspace":
		m.app.Handle(game.Event{Kind: game.EventBackspace})
		return m, nil
	default:
		runes := msg.Runes
		if len(runes) == 1 {
			m.app.Handle(game.Event{Kind: game.EventCharacterInput, Char: runes[0]})
		}
		return m, nil
	}
}

// submit forwards the Submit event and, when it completes a round, writes
// the outcome to the recorder. Recording failures are logged and otherwise
// ignored; they must not disturb play.
func (m Model) submit() (tea.Model, tea.Cmd) {
	g := m.app.Guess
	wasWaiting := g != nil && g.State == game.WaitingForGuess
	m.app.Handle(game.Event{Kind: game.EventSubmit})
	if !wasWaiting || g.State != game.ShowingResult || g.LastGuess == nil {
		return m, nil
	}

	target := m.app.Stats.SampleSharpe
	if g.Target == game.TargetActual {
		target = m.app.Stats.ActualSharpe
	}
	rec := &store.RoundRecord{
		Timestamp:   time.Now().UnixMilli(),
		Target:      g.Target.Name(),
		Guess:       *g.LastGuess,
		TargetValue: target,
		Tolerance:   m.app.Stats.SharpeError,
		Correct:     g.WasCorrect,
		Score:       g.Score,
	}
	if err := m.recorder.RecordRound(rec); err != nil {
		m.logger.Error("record round", "err", err)
	}
	return m, nil
}

// updateHistory handles keys while the history overlay is open.
func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.app.Handle(game.Event{Kind: game.EventQuit})
		return m, tea.Quit
	case "h", "esc":
		m.historyMode = false
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) loadHistoryCmd() tea.Cmd {
	rec := m.recorder
	return func() tea.Msg {
		rounds, err := rec.RecentRounds(historyLimit)
		return historyLoadedMsg{rounds: rounds, err: err}
	}
}

// renderHistory formats recent rounds for the overlay, newest first.
func renderHistory(rounds []store.RoundRecord) string {
	if len(rounds) == 0 {
		return dimStyle.Render("No recorded rounds. Enable history in the config file to record them.")
	}
	out := colHeaderStyle.Render(fmt.Sprintf("%-20s %-7s %10s %10s %10s  %s",
		"WHEN", "TARGET", "GUESS", "VALUE", "±TOL", "RESULT")) + "\n"
	for _, r := range rounds {
		when := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04:05")
		result := lossStyle.Render("MISS")
		if r.Correct {
			result = gainStyle.Render("HIT")
		}
		out += fmt.Sprintf("%-20s %-7s %10s %10s %10s  %s\n",
			when, r.Target, FormatSharpe(r.Guess), FormatSharpe(r.TargetValue),
			FormatSharpe(r.Tolerance), result)
	}
	return out
}
