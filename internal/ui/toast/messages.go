package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/domain"
)

// TickFunc arms a one-shot timer; tea.Tick satisfies it
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Reason records why a toast asked the store to remove it
type Reason int

const (
	ReasonExpired Reason = iota
	ReasonDismissed
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// ChangedMsg carries a fresh snapshot of the store's notification list
type ChangedMsg struct {
	Notifications []domain.Notification
}

// UnsubscribedMsg is sent when the store subscription has been closed
type UnsubscribedMsg struct{}

// RemovedMsg reports that a toast invoked its removal callback
type RemovedMsg struct {
	ID     domain.ID
	Type   domain.Type
	Reason Reason
	// Existed is false when the store had already dropped the ID
	Existed bool
}

// expireMsg is delivered when a countdown timer elapses
type expireMsg struct {
	id  domain.ID
	tag int
}

// frameMsg redraws a running progress bar
type frameMsg struct {
	id  domain.ID
	tag int
}

// WaitForChange returns a command that blocks until the store publishes
// the next snapshot on ch
func WaitForChange(ch <-chan []domain.Notification) tea.Cmd {
	return func() tea.Msg {
		list, ok := <-ch
		if !ok {
			return UnsubscribedMsg{}
		}
		return ChangedMsg{Notifications: list}
	}
}
