package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	MarqueeGold = lipgloss.Color("#EAB308")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Red         = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)
)

// Header style for the app name line
var HeaderStyle = lipgloss.NewStyle().
	Foreground(MarqueeGold).
	Bold(true).
	Padding(0, 1)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Bookmark glyph shown next to saved titles in both lists
var (
	BookmarkChar  = "◆"
	BookmarkStyle = lipgloss.NewStyle().Foreground(MarqueeGold)
	BookmarkBlank = " "
)

// Overlay styles
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MarqueeGold).
			Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(White).
				Bold(true).
				MarginBottom(1)

	// Watchlist toggle affordance inside the overlay: gold when the
	// title is saved, plain otherwise
	SavedBadgeStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold).
			Bold(true)

	UnsavedBadgeStyle = lipgloss.NewStyle().
				Foreground(LightGray)
)

// Status bar styles
var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	StatusErrStyle = lipgloss.NewStyle().
			Foreground(Red).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter input styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(MarqueeGold).
				Bold(true)
)

// Match highlight style for filtered watchlist rows
var MatchHighlightStyle = lipgloss.NewStyle().
	Foreground(MarqueeGold).
	Bold(true)

// Spinner
var (
	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	SpinnerStyle  = lipgloss.NewStyle().Foreground(MarqueeGold)
)

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
