package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/types"
)

// Resizer is implemented by overlays that fit themselves to the area above
// the status bar
type Resizer interface {
	Resize(width, height int)
}

// Stack holds the open overlays, topmost last. Keys go to the topmost one.
type Stack struct {
	overlays []Overlay

	// area available to overlays, zero until the first resize
	width, height int
}

// NewStack creates an empty overlay stack
func NewStack() *Stack {
	return &Stack{}
}

// Push opens an overlay on top, sized to the current area
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.fit(o)
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Current returns the topmost overlay, or nil when none is open
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty returns true if no overlay is open
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Mode is the status bar mode while the stack is in its current state
func (s *Stack) Mode() types.Mode {
	if s.IsEmpty() {
		return types.ModeNormal
	}
	return types.ModeHelp
}

// Resize records the area above the status bar and refits every overlay
func (s *Stack) Resize(width, height int) {
	s.width, s.height = width, height
	for _, o := range s.overlays {
		s.fit(o)
	}
}

// Update closes the topmost overlay on CloseOverlayMsg and forwards
// anything else to it
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.overlays = s.overlays[:len(s.overlays)-1]
		return nil
	}

	top := len(s.overlays) - 1
	next, cmd := s.overlays[top].Update(msg)
	if o, ok := next.(Overlay); ok {
		s.overlays[top] = o
	}
	return cmd
}

func (s *Stack) fit(o Overlay) {
	if r, ok := o.(Resizer); ok && s.height > 0 {
		r.Resize(s.width, s.height)
	}
}
