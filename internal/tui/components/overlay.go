package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/tui/styles"
)

// Overlay renders the detail view for the selected title, layered above
// whichever list is active.
type Overlay struct {
	width  int
	height int
}

func NewOverlay() Overlay {
	return Overlay{}
}

func (o *Overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// View renders the overlay. Exactly one of detail/err/loading applies:
// a failed fetch keeps the overlay open with the error condition rendered
// in place of the metadata.
func (o *Overlay) View(detail *domain.MovieDetail, err error, loading bool, spinnerFrame int, saved bool) string {
	innerWidth := o.width - 8
	if innerWidth < 20 {
		innerWidth = 20
	}

	var b strings.Builder

	switch {
	case loading:
		spinner := styles.SpinnerStyle.Render(styles.SpinnerFrames[spinnerFrame%len(styles.SpinnerFrames)])
		b.WriteString(spinner + " Loading details…")

	case err != nil:
		b.WriteString(styles.ErrorStyle.Render("Couldn't load details"))
		b.WriteString("\n\n")
		b.WriteString(styles.DimStyle.Render(wordWrap(err.Error(), innerWidth)))

	case detail != nil:
		o.renderDetail(&b, detail, innerWidth, saved)

	default:
		b.WriteString(styles.DimStyle.Render("No details available."))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpKeyStyle.Render("b") + styles.HelpDescStyle.Render(" toggle watchlist  "))
	b.WriteString(styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" close"))

	panel := styles.OverlayStyle.Width(innerWidth + 4).Render(b.String())
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, panel)
}

func (o *Overlay) renderDetail(b *strings.Builder, d *domain.MovieDetail, width int, saved bool) {
	b.WriteString(styles.OverlayTitleStyle.Width(width).Render(d.Title))
	b.WriteString("\n")

	badge := styles.UnsavedBadgeStyle.Render("☆ not on watchlist")
	if saved {
		badge = styles.SavedBadgeStyle.Render("★ on your watchlist")
	}
	b.WriteString(badge)
	b.WriteString("\n\n")

	meta := []string{}
	if d.Year != "" {
		meta = append(meta, d.Year)
	}
	if d.Rated != "" {
		meta = append(meta, d.Rated)
	}
	if d.Runtime != "" {
		meta = append(meta, d.Runtime)
	}
	if d.Kind != domain.KindAny {
		meta = append(meta, string(d.Kind))
	}
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	if d.Genre != "" {
		b.WriteString(styles.DimStyle.Render(d.Genre))
		b.WriteString("\n")
	}
	if d.Actors != "" {
		b.WriteString(styles.DimStyle.Render(d.Actors))
		b.WriteString("\n")
	}

	if d.Plot != "" {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(wordWrap(d.Plot, width)))
		b.WriteString("\n")
	}

	if len(d.Ratings) > 0 {
		b.WriteString("\n")
		for _, r := range d.Ratings {
			b.WriteString(fmt.Sprintf("%s %s\n",
				styles.AccentStyle.Render(r.Value),
				styles.DimStyle.Render(r.Source)))
		}
	}
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
