// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/config"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/riordanpawley/toaster/internal/feed"
	"github.com/riordanpawley/toaster/internal/store"
	"github.com/riordanpawley/toaster/internal/ui"
	"github.com/riordanpawley/toaster/internal/ui/overlay"
	"github.com/riordanpawley/toaster/internal/ui/statusbar"
	"github.com/riordanpawley/toaster/internal/ui/styles"
	"github.com/riordanpawley/toaster/internal/ui/toast"
)

// statusBarHeight is the single row the status bar takes at the bottom
const statusBarHeight = 1

// Options wires the model to its collaborators. Nil fields get defaults.
type Options struct {
	Store    *store.Store
	Recorder toast.Recorder
	Logger   *slog.Logger
	Script   *feed.Script

	// Tick and Now replace the real clock in tests
	Tick toast.TickFunc
	Now  func() time.Time
}

// Model is the main application state
type Model struct {
	// Notification source and its subscription
	store       *store.Store
	changes     <-chan []domain.Notification
	unsubscribe func()

	// Rendered toast stack
	toasts *toast.Container

	// Scripted notifications, nil without a script
	player *feed.Player

	// UI state
	overlayStack *overlay.Stack
	keys         KeyMap
	pushed       map[domain.Type]int

	// Terminal size
	width  int
	height int

	// Styles
	styles *styles.Styles

	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger
}

// New creates a new application model with the given config
func New(cfg *config.Config, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := opts.Store
	if s == nil {
		s = store.New(
			store.WithMaxActive(cfg.Toast.MaxActive),
			store.WithLogger(logger),
		)
	}
	changes, unsubscribe := s.Subscribe()

	st := styles.New()
	container := toast.NewContainer(s, toast.Options{
		Duration: cfg.Duration(),
		Frame:    cfg.Frame(),
		Width:    cfg.Toast.Width,
		Styles:   st,
		Recorder: opts.Recorder,
		Logger:   logger,
		Tick:     opts.Tick,
		Now:      opts.Now,
	})

	var player *feed.Player
	if opts.Script != nil {
		player = feed.NewPlayer(opts.Script, s, feed.TickFunc(opts.Tick))
	}

	return Model{
		store:        s,
		changes:      changes,
		unsubscribe:  unsubscribe,
		toasts:       container,
		player:       player,
		overlayStack: overlay.NewStack(),
		keys:         DefaultKeyMap(),
		pushed:       make(map[domain.Type]int),
		styles:       st,
		config:       cfg,
		logger:       logger,
	}
}

// Init starts listening to the store and schedules the script, if any
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{toast.WaitForChange(m.changes)}
	if m.player != nil {
		cmds = append(cmds, m.player.Start())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overlayStack.Resize(msg.Width, max(msg.Height-statusBarHeight, 0))
		return m, m.toasts.SetScreenWidth(msg.Width)

	case toast.ChangedMsg:
		return m, tea.Batch(
			m.toasts.Sync(msg.Notifications),
			toast.WaitForChange(m.changes),
		)

	case toast.UnsubscribedMsg:
		m.logger.Debug("store subscription closed")
		return m, nil

	case feed.FiredMsg:
		if msg.Err != nil {
			m.logger.Warn("scripted notification rejected", "index", msg.Index, "error", msg.Err)
			return m, nil
		}
		m.logger.Debug("scripted notification added", "index", msg.Index, "id", msg.ID)
		return m, nil

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		return m, m.overlayStack.Update(msg)

	case tea.MouseMsg:
		// Toasts sit above overlays, so they keep the pointer either way
		return m, m.toasts.HandleMouse(msg)
	}

	// Timer and removal messages belong to the toast stack
	return m, m.toasts.Update(msg)
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Render status bar
	mode := m.overlayStack.Mode()
	statusBarView := statusbar.New(mode, m.width, m.styles).
		WithCounts(statusbar.Counts{Active: m.toasts.Len(), Paused: m.toasts.PausedCount()}).
		WithHints(statusbar.GetHints(mode, m.keys)).
		Render()
	mainHeight := max(m.height-lipgloss.Height(statusBarView), 0)

	var mainView string
	if current := m.overlayStack.Current(); current != nil {
		mainView = lipgloss.Place(m.width, mainHeight, lipgloss.Center, lipgloss.Center, m.renderOverlay(current))
	} else {
		mainView = lipgloss.Place(m.width, mainHeight, lipgloss.Left, lipgloss.Top, m.renderPane())
	}
	mainView = ui.Clip(mainView, m.width, mainHeight)

	// Render toasts in the top-right corner, above everything else
	x, y := m.toasts.Origin()
	mainView = ui.Overlay(mainView, m.toasts.View(), x, y)

	return lipgloss.JoinVertical(lipgloss.Left, mainView, statusBarView)
}

// Close releases the store subscription
func (m Model) Close() {
	m.unsubscribe()
}

// handleKey processes keyboard input in normal mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Success):
		m.push(domain.TypeSuccess)
	case key.Matches(msg, m.keys.Error):
		m.push(domain.TypeError)
	case key.Matches(msg, m.keys.Info):
		m.push(domain.TypeInfo)
	case key.Matches(msg, m.keys.Warning):
		m.push(domain.TypeWarning)

	case key.Matches(msg, m.keys.DismissNewest):
		return m, m.toasts.DismissNewest()
	case key.Matches(msg, m.keys.DismissAll):
		return m, m.toasts.DismissAll()

	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.Sections()))
	}

	// The new notification reaches the container through the subscription
	return m, nil
}

// handleOverlayKey routes keyboard messages to the overlay stack
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.unsubscribe()
		return m, tea.Quit
	}
	cmd := m.overlayStack.Update(msg)
	return m, cmd
}

// push adds the next canned notification of the given type
func (m Model) push(t domain.Type) {
	s := sampleFor(t, m.pushed[t])
	m.pushed[t]++

	id, err := m.store.Add(t, s.title, s.message)
	if err != nil {
		m.logger.Error("failed to add notification", "type", t.String(), "error", err)
		return
	}
	m.logger.Debug("notification pushed", "id", id, "type", t.String())
}

func (m Model) renderOverlay(o overlay.Overlay) string {
	width, _ := o.Size()
	body := o.View()
	if title := o.Title(); title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), body)
	}
	return m.styles.Overlay.Width(min(width, m.width-2)).Render(body)
}

func (m Model) renderPane() string {
	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render("toaster"))
	b.WriteString("\n")
	b.WriteString(m.styles.PaneText.Render("Press s, e, i or w to raise a notification."))
	b.WriteString("\n")
	b.WriteString(m.styles.PaneText.Render(fmt.Sprintf(
		"Each one dismisses itself after %s; hover it to hold it.", m.config.Duration())))
	b.WriteString("\n\n")

	pushed := 0
	for _, n := range m.pushed {
		pushed += n
	}
	b.WriteString(m.styles.PaneMuted.Render(fmt.Sprintf("%d raised from the keyboard", pushed)))
	if m.player != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.PaneMuted.Render(fmt.Sprintf("script: %d scheduled events", m.player.Len())))
	}

	return m.styles.Pane.Render(b.String())
}
