package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/domain"
)

// Adder is the store operation the player feeds
type Adder interface {
	Add(typ domain.Type, title, message string) (domain.ID, error)
}

// TickFunc schedules a message after a delay; tea.Tick by default
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// FiredMsg reports that a scripted event was delivered to the store
type FiredMsg struct {
	Index int
	ID    domain.ID
	Err   error
}

// Player replays a script into a store
type Player struct {
	script *Script
	adder  Adder
	tick   TickFunc
}

// NewPlayer creates a player. A nil tick uses tea.Tick.
func NewPlayer(script *Script, adder Adder, tick TickFunc) *Player {
	if tick == nil {
		tick = tea.Tick
	}
	return &Player{script: script, adder: adder, tick: tick}
}

// Len returns the number of scripted events
func (p *Player) Len() int {
	if p.script == nil {
		return 0
	}
	return len(p.script.Events)
}

// Start schedules every event. Each command adds its notification when its
// delay elapses and reports the outcome as a FiredMsg.
func (p *Player) Start() tea.Cmd {
	if p.script == nil || len(p.script.Events) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(p.script.Events))
	for i, ev := range p.script.Events {
		fire := p.fire(i, ev)
		if ev.After == 0 {
			cmds = append(cmds, func() tea.Msg { return fire(time.Time{}) })
			continue
		}
		cmds = append(cmds, p.tick(ev.After, fire))
	}
	return tea.Batch(cmds...)
}

func (p *Player) fire(index int, ev Event) func(time.Time) tea.Msg {
	adder := p.adder
	return func(time.Time) tea.Msg {
		id, err := adder.Add(ev.Kind(), ev.Title, ev.Message)
		return FiredMsg{Index: index, ID: id, Err: err}
	}
}
