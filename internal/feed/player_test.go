package feed

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/riordanpawley/toaster/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTick fires immediately and remembers the requested delays
type recordingTick struct {
	delays []time.Duration
}

func (r *recordingTick) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.delays = append(r.delays, d)
	return func() tea.Msg { return fn(time.Time{}.Add(d)) }
}

// collect runs a command and flattens any batch into its messages
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(t, c)...)
	}
	return out
}

func TestPlayer_Start(t *testing.T) {
	script, err := Parse([]byte(sampleScript))
	require.NoError(t, err)

	s := store.New()
	rec := &recordingTick{}
	p := NewPlayer(script, s, rec.tick)

	assert.Equal(t, 3, p.Len())
	msgs := collect(t, p.Start())

	// zero delays fire directly without a timer
	assert.ElementsMatch(t, []time.Duration{500 * time.Millisecond, 2 * time.Second}, rec.delays)
	require.Len(t, msgs, 3)
	for _, msg := range msgs {
		fired, ok := msg.(FiredMsg)
		require.True(t, ok, "unexpected %T", msg)
		assert.NoError(t, fired.Err)
		assert.NotEmpty(t, fired.ID)
	}

	list := s.List()
	require.Len(t, list, 3)
	titles := []string{list[0].Title, list[1].Title, list[2].Title}
	assert.ElementsMatch(t, []string{"Build finished", "Disk almost full", "Welcome"}, titles)
}

func TestPlayer_EmptyScript(t *testing.T) {
	assert.Nil(t, NewPlayer(&Script{}, store.New(), nil).Start())
	assert.Nil(t, NewPlayer(nil, store.New(), nil).Start())
}

type failingAdder struct{}

func (failingAdder) Add(domain.Type, string, string) (domain.ID, error) {
	return "", errors.New("store closed")
}

func TestPlayer_ReportsAddErrors(t *testing.T) {
	script := &Script{Events: []Event{{Type: "info", Title: "x", kind: domain.TypeInfo}}}

	msgs := collect(t, NewPlayer(script, failingAdder{}, nil).Start())

	require.Len(t, msgs, 1)
	fired := msgs[0].(FiredMsg)
	assert.Equal(t, 0, fired.Index)
	assert.EqualError(t, fired.Err, "store closed")
}
