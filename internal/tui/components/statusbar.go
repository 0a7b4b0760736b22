package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwhitford/marquee/internal/tui/styles"
)

// StatusBar renders the status line plus contextual key hints.
type StatusBar struct {
	width int
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

func (s *StatusBar) SetWidth(width int) { s.width = width }

// View renders the bar. remaining > 0 surfaces the load-more hint;
// showingWatchlist flips the view-toggle hint label.
func (s *StatusBar) View(status string, isErr, loading bool, spinnerFrame int, remaining int, showingWatchlist bool) string {
	left := styles.StatusStyle.Render(status)
	if isErr {
		left = styles.StatusErrStyle.Render(status)
	}
	if loading {
		spinner := styles.SpinnerStyle.Render(styles.SpinnerFrames[spinnerFrame%len(styles.SpinnerFrames)])
		left = spinner + " " + left
	}

	hints := ""
	if remaining > 0 && !showingWatchlist {
		hints += styles.HelpKeyStyle.Render("m") +
			styles.HelpDescStyle.Render(fmt.Sprintf(" load more (%d) · ", remaining))
	}
	toggleLabel := " view watchlist"
	if showingWatchlist {
		toggleLabel = " close watchlist"
	}
	hints += styles.HelpKeyStyle.Render("w") + styles.HelpDescStyle.Render(toggleLabel)
	hints += styles.HelpDescStyle.Render(" · ") + styles.HelpKeyStyle.Render("q") + styles.HelpDescStyle.Render(" quit")

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + hints
}
