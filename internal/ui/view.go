package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sharpeguess/internal/game"
)

// Styles.
var (
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	actualStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sampleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	meanStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	minStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	maxStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	guessStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Underline(true)
	scoreStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	targetStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	gainStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lossStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	colHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.historyMode {
		title := labelStyle.Render("Round History") + dimStyle.Render("   h/esc close  q quit")
		if m.historyErr != nil {
			return title + "\n" + lossStyle.Render(fmt.Sprintf("history error: %v", m.historyErr))
		}
		return title + "\n" + m.viewport.View()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	used := lipgloss.Height(header) + lipgloss.Height(footer)
	chartHeight := m.height - used - 2
	chart := boxStyle.Width(m.width - 2).Render(
		chartStyle.Render(RenderChart(m.app.Plot, m.width-4, chartHeight)))

	return lipgloss.JoinVertical(lipgloss.Left, header, chart, footer)
}

// renderHeader draws the stats line for the current mode.
func (m Model) renderHeader() string {
	st := m.app.Stats
	var line string

	g := m.app.Guess
	switch {
	case g == nil:
		// Display mode: everything is visible.
		line = labelStyle.Render("Actual Sharpe: ") + actualStyle.Render(FormatSharpe(st.ActualSharpe)) +
			"  " + labelStyle.Render("Sample Sharpe: ") + sampleStyle.Render(FormatSharpe(st.SampleSharpe)) +
			errStyle.Render(" ±"+FormatSharpe(st.SharpeError)) +
			"  " + labelStyle.Render("Mean: ") + meanStyle.Render(FormatReturn(st.SampleMean)) +
			"  " + labelStyle.Render("Min: ") + minStyle.Render(FormatSharpe(st.SampleMin)) +
			"  " + labelStyle.Render("Max: ") + maxStyle.Render(FormatSharpe(st.SampleMax))

	case g.State == game.WaitingForGuess:
		line = labelStyle.Render("Your guess: ") + guessStyle.Render(g.CurrentGuess) +
			"   " + scoreStyle.Render(fmt.Sprintf("Score: %d", g.Score)) +
			"   " + labelStyle.Render("Target: ") + targetStyle.Render(g.Target.Name())

	default: // ShowingResult
		verdict := lossStyle.Render("INCORRECT")
		if g.WasCorrect {
			verdict = gainStyle.Render("CORRECT")
		}
		var guess string
		if g.LastGuess != nil {
			guess = FormatSharpe(*g.LastGuess)
		}
		target := st.SampleSharpe
		if g.Target == game.TargetActual {
			target = st.ActualSharpe
		}
		line = verdict +
			"  " + labelStyle.Render("Guess: ") + meanStyle.Render(guess) +
			"  " + labelStyle.Render(g.Target.Name()+" Sharpe: ") + sampleStyle.Render(FormatSharpe(target)) +
			errStyle.Render(fmt.Sprintf(" (tolerance ±%s)", FormatSharpe(m.app.Tolerance()))) +
			"  " + scoreStyle.Render(fmt.Sprintf("Score: %d", g.Score))
	}

	title := "Statistics"
	if g != nil {
		title = "Guess the Sharpe"
	}
	return boxStyle.Width(m.width - 2).Render(labelStyle.Render(title) + "\n" + line)
}

// renderFooter draws the key help for the current mode.
func (m Model) renderFooter() string {
	var keys []string
	g := m.app.Guess
	switch {
	case g == nil:
		keys = []string{"r regenerate", "h history", "q quit"}
	case g.State == game.WaitingForGuess:
		keys = []string{"0-9 . - type", "backspace delete", "enter submit", "t toggle target", "r new round", "h history", "q quit"}
	default:
		keys = []string{"n next round", "h history", "q quit"}
	}
	return boxStyle.Width(m.width - 2).Render(dimStyle.Render(strings.Join(keys, "   ")))
}
