package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Header is the style for binding group headers
	Header lipgloss.Style
	// Key is the style for key names
	Key lipgloss.Style
	// Description is the style for binding descriptions
	Description lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(styles.Text),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}
