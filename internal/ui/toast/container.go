// Package toast renders the stack of transient notifications.
//
// The Container mirrors the store's notification list: one Item per ID, in
// store order, stacked in the top-right corner of the screen. Each Item runs
// its own countdown and calls back into the store when it expires or is
// dismissed; the Container never removes anything from its list on its own.
package toast

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/countdown"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// Layout of the stack relative to the top-right corner of the screen
const (
	MarginTop   = 1
	MarginRight = 2
	Gap         = 1

	// MinWidth is the narrowest a toast is ever drawn
	MinWidth = 24
)

// DefaultDuration is how long a toast stays visible without interaction
const DefaultDuration = 5000 * time.Millisecond

// Remover is the store operation the container binds into each item
type Remover interface {
	Remove(id domain.ID) bool
}

// Options configures a Container. Zero values fall back to defaults.
type Options struct {
	Duration time.Duration
	Frame    time.Duration
	Width    int
	Styles   *styles.Styles
	Recorder Recorder
	Logger   *slog.Logger
	Tick     TickFunc
	Now      func() time.Time
}

// Container renders one Item per active notification
type Container struct {
	remover Remover
	items   []*Item
	index   map[domain.ID]*Item

	hovered domain.ID
	pointer *point

	screenWidth int
	width       int

	opts Options
}

type point struct {
	x, y int
}

// NewContainer creates an empty container bound to the store's removal
func NewContainer(remover Remover, opts Options) *Container {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Frame < 0 {
		opts.Frame = 0
	}
	if opts.Width == 0 {
		opts.Width = 40
	}
	if opts.Width < MinWidth {
		opts.Width = MinWidth
	}
	if opts.Styles == nil {
		opts.Styles = styles.New()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Container{
		remover: remover,
		index:   make(map[domain.ID]*Item),
		width:   opts.Width,
		opts:    opts,
	}
}

// Sync reconciles the rendered items with a store snapshot. Known IDs keep
// their countdown, new IDs mount and start counting, vanished IDs unmount.
func (c *Container) Sync(list []domain.Notification) tea.Cmd {
	var cmds []tea.Cmd
	next := make([]*Item, 0, len(list))
	nextIndex := make(map[domain.ID]*Item, len(list))

	for _, n := range list {
		if _, dup := nextIndex[n.ID]; dup {
			c.opts.Logger.Warn("duplicate notification id in snapshot", "id", n.ID)
			continue
		}
		it, ok := c.index[n.ID]
		if !ok {
			it = newItem(n, c.itemConfig(), c.bindRemove(n.ID))
			cmds = append(cmds, it.Mount())
			c.opts.Recorder.ToastShown(n.Type)
			c.opts.Logger.Debug("toast mounted", "id", n.ID, "type", n.Type.String())
		}
		next = append(next, it)
		nextIndex[n.ID] = it
	}

	for id, it := range c.index {
		if _, ok := nextIndex[id]; ok {
			continue
		}
		it.Unmount()
		c.opts.Recorder.ToastUnmounted(it.notification.Type)
		c.opts.Logger.Debug("toast unmounted", "id", id)
		if c.hovered == id {
			c.hovered = ""
		}
	}

	c.items = next
	c.index = nextIndex
	cmds = append(cmds, c.refreshHover())
	return tea.Batch(cmds...)
}

// Update routes timer and removal messages to their items. Messages for
// unmounted items are dropped, which is what cancels their timers.
func (c *Container) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case expireMsg:
		if it, ok := c.index[msg.id]; ok {
			return it.Update(msg)
		}
	case frameMsg:
		if it, ok := c.index[msg.id]; ok {
			return it.Update(msg)
		}
	case RemovedMsg:
		c.opts.Logger.Debug("toast removed",
			"id", msg.ID,
			"reason", msg.Reason.String(),
			"existed", msg.Existed)
	case tea.MouseMsg:
		return c.HandleMouse(msg)
	}
	return nil
}

// HandleMouse turns pointer motion into enter/leave transitions and left
// clicks on a dismiss button into a dismissal
func (c *Container) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	c.pointer = &point{x: msg.X, y: msg.Y}
	hover := c.refreshHover()

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return hover
	}
	it, x, y, ok := c.hit(msg.X, msg.Y)
	if !ok || !it.closeHit(x, y) {
		return hover
	}
	return tea.Batch(hover, it.Dismiss())
}

// DismissNewest dismisses the most recently added visible toast
func (c *Container) DismissNewest() tea.Cmd {
	for i := len(c.items) - 1; i >= 0; i-- {
		if !c.items[i].removed {
			return c.items[i].Dismiss()
		}
	}
	return nil
}

// DismissAll dismisses every visible toast
func (c *Container) DismissAll() tea.Cmd {
	var cmds []tea.Cmd
	for _, it := range c.items {
		cmds = append(cmds, it.Dismiss())
	}
	return tea.Batch(cmds...)
}

// SetScreenWidth adapts the toast width to the terminal. The stack moves
// with it, so hover is re-evaluated against the resting pointer.
func (c *Container) SetScreenWidth(width int) tea.Cmd {
	c.screenWidth = width
	c.width = c.itemWidth()
	for _, it := range c.items {
		it.SetWidth(c.width)
	}
	return c.refreshHover()
}

// Items returns the mounted items in display order
func (c *Container) Items() []*Item {
	return c.items
}

// Len returns the number of mounted items
func (c *Container) Len() int {
	return len(c.items)
}

// PausedCount returns how many countdowns are currently paused
func (c *Container) PausedCount() int {
	count := 0
	for _, it := range c.items {
		if it.State() == countdown.StatePaused {
			count++
		}
	}
	return count
}

// Origin returns the screen cell of the stack's top-left corner
func (c *Container) Origin() (x, y int) {
	return max(c.screenWidth-c.width-MarginRight, 0), MarginTop
}

// View renders the stack, one blank line between items. Every line is
// exactly the toast width; placement on screen is left to the caller.
func (c *Container) View() string {
	if len(c.items) == 0 {
		return ""
	}
	blank := strings.Repeat(" ", c.width)
	var lines []string
	for i, it := range c.items {
		if i > 0 {
			for g := 0; g < Gap; g++ {
				lines = append(lines, blank)
			}
		}
		lines = append(lines, strings.Split(it.View(), "\n")...)
	}
	return strings.Join(lines, "\n")
}

// ItemAt returns the item under the screen cell (x, y)
func (c *Container) ItemAt(x, y int) (*Item, bool) {
	it, _, _, ok := c.hit(x, y)
	return it, ok
}

func (c *Container) hit(x, y int) (*Item, int, int, bool) {
	originX, top := c.Origin()
	if x < originX || x >= originX+c.width {
		return nil, 0, 0, false
	}
	for _, it := range c.items {
		h := it.Height()
		if y >= top && y < top+h {
			return it, x - originX, y - top, true
		}
		top += h + Gap
	}
	return nil, 0, 0, false
}

// refreshHover moves the hover to whatever item is under the last known
// pointer position
func (c *Container) refreshHover() tea.Cmd {
	var target domain.ID
	if c.pointer != nil {
		if it, ok := c.ItemAt(c.pointer.x, c.pointer.y); ok && !it.removed {
			target = it.notification.ID
		}
	}
	if target == c.hovered {
		return nil
	}

	var cmds []tea.Cmd
	if prev, ok := c.index[c.hovered]; ok {
		cmds = append(cmds, prev.PointerLeave())
	}
	c.hovered = target
	if next, ok := c.index[target]; ok {
		cmds = append(cmds, next.PointerEnter())
	}
	return tea.Batch(cmds...)
}

func (c *Container) itemWidth() int {
	width := c.opts.Width
	if c.screenWidth <= 0 {
		return width
	}
	// half the screen, never below the minimum
	width = min(width, max(c.screenWidth/2, MinWidth))
	if room := c.screenWidth - MarginRight; room < width {
		width = max(room, MinWidth)
	}
	return width
}

func (c *Container) itemConfig() itemConfig {
	return itemConfig{
		duration: c.opts.Duration,
		frame:    c.opts.Frame,
		width:    c.width,
		tick:     c.opts.Tick,
		now:      c.opts.Now,
		styles:   c.opts.Styles,
		recorder: c.opts.Recorder,
	}
}

func (c *Container) bindRemove(id domain.ID) func() bool {
	remover := c.remover
	return func() bool {
		return remover.Remove(id)
	}
}
