package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/toaster/internal/types"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// Counts summarises the toast stack for display
type Counts struct {
	Active int
	Paused int
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	styles *styles.Styles
	counts Counts
	hints  string
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithCounts returns a copy of the status bar showing the given counts
func (sb StatusBar) WithCounts(c Counts) StatusBar {
	sb.counts = c
	return sb
}

// WithHints returns a copy of the status bar showing the given hints
func (sb StatusBar) WithHints(hints string) StatusBar {
	sb.hints = hints
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")
	separator := sb.styles.StatusHint.Render(" │ ")
	info := sb.styles.StatusInfo.Render(FormatCounts(sb.counts))

	parts := []string{modeBadge, separator, info}
	if sb.hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(sb.hints))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	// Keep to one row; padding takes two columns
	if sb.width > 2 {
		content = ansi.Truncate(content, sb.width-2, "…")
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

// FormatCounts renders the toast counts, e.g. "3 active · 1 paused"
func FormatCounts(c Counts) string {
	if c.Active == 0 {
		return "no notifications"
	}
	if c.Paused == 0 {
		return fmt.Sprintf("%d active", c.Active)
	}
	return fmt.Sprintf("%d active · %d paused", c.Active, c.Paused)
}
