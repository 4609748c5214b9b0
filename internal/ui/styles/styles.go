package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Background pane
	Pane      lipgloss.Style
	PaneTitle lipgloss.Style
	PaneText  lipgloss.Style
	PaneMuted lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
	ToastTitle   lipgloss.Style
	ToastMessage lipgloss.Style
	ToastClose   lipgloss.Style
	ToastTrack   lipgloss.Color
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Pane: lipgloss.NewStyle().
			Padding(1, 2),

		PaneTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginBottom(1),

		PaneText: lipgloss.NewStyle().
			Foreground(Text),

		PaneMuted: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		ToastInfo:    toastBox(Blue),
		ToastSuccess: toastBox(Green),
		ToastWarning: toastBox(Yellow),
		ToastError:   toastBox(Red),

		ToastTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		ToastMessage: lipgloss.NewStyle().
			Foreground(Subtext1),

		ToastClose: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastTrack: Surface1,
	}
}

func toastBox(accent lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(accent).
		Padding(0, 1)
}

// Toast returns the box style for a notification type. Unknown types get
// the zero style; the store never admits them.
func (s *Styles) Toast(t domain.Type) lipgloss.Style {
	switch t {
	case domain.TypeSuccess:
		return s.ToastSuccess
	case domain.TypeError:
		return s.ToastError
	case domain.TypeInfo:
		return s.ToastInfo
	case domain.TypeWarning:
		return s.ToastWarning
	}
	return lipgloss.NewStyle()
}
