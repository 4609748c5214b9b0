package toast

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/countdown"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

const closeGlyph = "✕"

// itemConfig is the per-item slice of the container options
type itemConfig struct {
	duration time.Duration
	frame    time.Duration
	width    int
	tick     TickFunc
	now      func() time.Time
	styles   *styles.Styles
	recorder Recorder
}

// Item renders one notification and owns its auto-dismiss countdown
type Item struct {
	notification domain.Notification
	appearance   Appearance
	countdown    countdown.Countdown
	bar          progress.Model
	width        int
	frame        time.Duration

	hovered bool
	removed bool

	// onRemove asks the store to drop this notification. It reports whether
	// the ID was still active.
	onRemove func() bool

	tick     TickFunc
	now      func() time.Time
	styles   *styles.Styles
	recorder Recorder
}

func newItem(n domain.Notification, cfg itemConfig, onRemove func() bool) *Item {
	appearance := AppearanceFor(cfg.styles, n.Type)
	it := &Item{
		notification: n,
		appearance:   appearance,
		countdown:    countdown.New(cfg.duration),
		bar: progress.New(
			progress.WithSolidFill(string(appearance.Accent)),
			progress.WithoutPercentage(),
		),
		frame:    cfg.frame,
		onRemove: onRemove,
		tick:     cfg.tick,
		now:      cfg.now,
		styles:   cfg.styles,
		recorder: cfg.recorder,
	}
	it.bar.EmptyColor = string(cfg.styles.ToastTrack)
	it.SetWidth(cfg.width)
	return it
}

// Notification returns the displayed record
func (it *Item) Notification() domain.Notification {
	return it.notification
}

// State returns the countdown state
func (it *Item) State() countdown.State {
	return it.countdown.State()
}

// Hovered reports whether the pointer is over the item
func (it *Item) Hovered() bool {
	return it.hovered
}

// Removed reports whether removal has been requested or the item unmounted
func (it *Item) Removed() bool {
	return it.removed
}

// SetWidth sets the total rendered width including the border
func (it *Item) SetWidth(width int) {
	it.width = width
	it.bar.Width = it.innerWidth()
}

// Mount starts the countdown for the full duration
func (it *Item) Mount() tea.Cmd {
	sched, ok := it.countdown.Start(it.now())
	if !ok {
		return nil
	}
	return it.schedule(sched)
}

// Unmount stops the countdown without calling the removal callback. Any
// timer still in flight becomes stale.
func (it *Item) Unmount() {
	it.countdown.Stop()
	it.removed = true
	it.hovered = false
}

// PointerEnter pauses a running countdown
func (it *Item) PointerEnter() tea.Cmd {
	if it.removed {
		return nil
	}
	it.hovered = true
	if it.countdown.Pause(it.now()) {
		it.recorder.ToastPaused(it.notification.Type)
	}
	return nil
}

// PointerLeave resumes a paused countdown with the remaining budget
func (it *Item) PointerLeave() tea.Cmd {
	it.hovered = false
	if it.removed {
		return nil
	}
	sched, ok := it.countdown.Resume(it.now())
	if !ok {
		return nil
	}
	return it.schedule(sched)
}

// Dismiss removes the toast immediately, whatever the countdown state
func (it *Item) Dismiss() tea.Cmd {
	if it.removed {
		return nil
	}
	it.countdown.Stop()
	it.recorder.ToastDismissed(it.notification.Type)
	return it.remove(ReasonDismissed)
}

// Update handles the item's own timer messages
func (it *Item) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case expireMsg:
		if msg.id != it.notification.ID || !it.countdown.Fire(msg.tag) {
			return nil
		}
		it.recorder.ToastExpired(it.notification.Type)
		return it.remove(ReasonExpired)

	case frameMsg:
		if msg.id != it.notification.ID ||
			it.countdown.State() != countdown.StateRunning ||
			msg.tag != it.countdown.Tag() {
			return nil
		}
		return it.nextFrame(msg.tag)
	}
	return nil
}

// View renders the toast box: icon, title and dismiss button on the first
// row, the optional message, then the progress bar.
func (it *Item) View() string {
	n := it.notification
	inner := it.innerWidth()

	icon := lipgloss.NewStyle().Foreground(it.appearance.Accent).Render(it.appearance.Icon)
	iconWidth := lipgloss.Width(icon)
	closeBtn := it.styles.ToastClose.Render(closeGlyph)

	// icon, space, title, one space, close button; long titles wrap onto
	// further rows so the button stays on the first
	titleRoom := max(inner-iconWidth-1-1-lipgloss.Width(closeGlyph), 1)
	title := strings.Split(it.styles.ToastTitle.Width(titleRoom).Render(n.Title), "\n")
	indent := strings.Repeat(" ", iconWidth+1)

	lines := make([]string, 0, len(title)+2)
	for i, line := range title {
		if i == 0 {
			lines = append(lines, icon+" "+line+" "+closeBtn)
			continue
		}
		lines = append(lines, indent+line)
	}
	if n.HasMessage() {
		lines = append(lines, it.styles.ToastMessage.Width(inner).Render(n.Message))
	}
	lines = append(lines, it.bar.ViewAs(it.countdown.Fraction(it.now())))

	return it.appearance.Box.Width(it.width - 2).Render(strings.Join(lines, "\n"))
}

// Height returns the rendered height in rows
func (it *Item) Height() int {
	return lipgloss.Height(it.View())
}

// closeHit reports whether the cell at (x, y), relative to the item's top
// left corner, belongs to the dismiss button
func (it *Item) closeHit(x, y int) bool {
	// border + padding + inner content; the glyph sits in the last content column
	col := it.width - 3
	return y == 1 && x >= col-1 && x <= col+1
}

func (it *Item) innerWidth() int {
	// border and horizontal padding on each side
	return max(it.width-4, 1)
}

func (it *Item) remove(reason Reason) tea.Cmd {
	if it.removed {
		return nil
	}
	it.removed = true
	it.hovered = false

	n := it.notification
	onRemove := it.onRemove
	return func() tea.Msg {
		return RemovedMsg{
			ID:      n.ID,
			Type:    n.Type,
			Reason:  reason,
			Existed: onRemove(),
		}
	}
}

func (it *Item) schedule(sched countdown.Schedule) tea.Cmd {
	id := it.notification.ID
	expire := it.tick(sched.After, func(time.Time) tea.Msg {
		return expireMsg{id: id, tag: sched.Tag}
	})
	return tea.Batch(expire, it.nextFrame(sched.Tag))
}

func (it *Item) nextFrame(tag int) tea.Cmd {
	if it.frame <= 0 {
		return nil
	}
	id := it.notification.ID
	return it.tick(it.frame, func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}
