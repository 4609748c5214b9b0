package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section is a named group of keybindings
type Section struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	sections   []Section
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay listing the given sections
func NewHelpOverlay(sections []Section) *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		sections:   sections,
		scroll:     0,
		viewHeight: 16,
	}
}

// Resize fits the visible rows to an area of the given height: frame border
// and padding, the title and its margin, the scroll footer and its margin
func (h *HelpOverlay) Resize(_, height int) {
	h.viewHeight = max(height-9, 3)
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, Close

		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
			return h, nil

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
			return h, nil

		case "g":
			h.scroll = 0
			return h, nil

		case "G":
			h.scroll = h.maxScroll
			return h, nil
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	lines := h.lines()

	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		result += "\n" + h.styles.Footer.Render(
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				"[",
				h.styles.Key.Render("j/k"),
				" to scroll, ",
				h.styles.Key.Render("g/G"),
				" to jump]",
			),
		)
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 44, h.viewHeight + 6
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, sec := range h.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.Header.Render(sec.Name+":"))

		for _, b := range sec.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			lines = append(lines, "  "+
				h.styles.Key.Render(padRight(help.Key, 8))+
				h.styles.Description.Render(help.Desc))
		}
	}
	return lines
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}
