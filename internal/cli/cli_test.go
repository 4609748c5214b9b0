package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/config"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{
		"--duration", "2500ms",
		"-w", "30",
		"--max=3",
		"--metrics=false",
		"--script", "demo.yaml",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, f.Duration)
	assert.Equal(t, 30, f.Width)
	assert.Equal(t, 3, f.MaxActive)
	assert.False(t, f.Metrics)
	assert.Equal(t, "demo.yaml", f.ScriptPath)

	assert.True(t, f.IsSet("duration"))
	assert.True(t, f.IsSet("metrics"))
	assert.False(t, f.IsSet("log-file"))
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"--nope"}, io.Discard)
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"version": 1, "toast": {"durationMs": 8000, "width": 50}}`)

	f, err := ParseFlags([]string{"--config", path, "--duration", "3s", "--metrics=false"}, io.Discard)
	require.NoError(t, err)

	cfg, err := LoadConfig(f)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Toast.DurationMs, "flag beats file")
	assert.Equal(t, 50, cfg.Toast.Width, "file beats default")
	assert.True(t, cfg.Metrics.Disabled)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero duration", []string{"--duration", "0s"}},
		{"negative cap", []string{"--max", "-1"}},
		{"bad level", []string{"--log-level", "chatty"}},
		{"missing file", []string{"--config", "/does/not/exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFlags(tt.args, io.Discard)
			require.NoError(t, err)

			_, err = LoadConfig(f)
			assert.Error(t, err)
		})
	}
}

func TestNewDependencies(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toast.MaxActive = 2

	deps, err := NewDependencies(cfg, "")
	require.NoError(t, err)
	defer deps.Close()

	assert.NotNil(t, deps.Store)
	assert.NotNil(t, deps.Metrics)
	assert.Nil(t, deps.Script)

	// the cap from config reaches the store
	for i := 0; i < 3; i++ {
		_, err := deps.Store.Info("hello", "")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, deps.Store.Len())
}

func TestNewDependencies_MetricsDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Metrics.Disabled = true

	deps, err := NewDependencies(cfg, "")
	require.NoError(t, err)
	defer deps.Close()

	assert.Nil(t, deps.Metrics)

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(deps, &buf))
	assert.Empty(t, buf.String())
}

func TestNewDependencies_BadScript(t *testing.T) {
	path := writeFile(t, "bad.yaml", "events:\n  - type: loud\n    title: x\n")

	_, err := NewDependencies(config.DefaultConfig(), path)

	var fe *domain.FeedError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Index)
}

func TestNewLogger_File(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "toaster.log")
	cfg.Log.Level = "debug"

	logger, closer, err := NewLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Debug("hello", "id", "t-1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "id=t-1")
}

func TestNewLogger_Discard(t *testing.T) {
	logger, closer, err := NewLogger(config.DefaultConfig())
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.NotNil(t, logger)
}

func TestCheckCommand(t *testing.T) {
	path := writeFile(t, "demo.yaml", `
events:
  - after: 1s
    type: error
    title: Build failed
  - after: 250ms
    type: success
    title: Tests passed
`)
	deps, err := NewDependencies(config.DefaultConfig(), path)
	require.NoError(t, err)
	defer deps.Close()

	var buf bytes.Buffer
	require.NoError(t, CheckCommand(deps, &buf))

	out := buf.String()
	assert.Contains(t, out, "Duration:   5s")
	assert.Contains(t, out, "Max active: unlimited")
	assert.Contains(t, out, "Script (2 events)")
	assert.Regexp(t, `1s\s+error\s+Build failed`, out)
	assert.Regexp(t, `250ms\s+success\s+Tests passed`, out)
}

func TestCheckCommand_TruncatesLongTitles(t *testing.T) {
	title := strings.Repeat("é", 70)
	path := writeFile(t, "long.yaml", "events:\n  - type: info\n    title: "+title+"\n")
	deps, err := NewDependencies(config.DefaultConfig(), path)
	require.NoError(t, err)
	defer deps.Close()

	var buf bytes.Buffer
	require.NoError(t, CheckCommand(deps, &buf))

	out := buf.String()
	require.True(t, utf8.ValidString(out), "multi-byte titles are cut on rune boundaries")
	assert.Contains(t, out, strings.Repeat("é", 57)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 58))
}

func TestCheckCommand_NoScript(t *testing.T) {
	deps, err := NewDependencies(config.DefaultConfig(), "")
	require.NoError(t, err)
	defer deps.Close()

	var buf bytes.Buffer
	require.NoError(t, CheckCommand(deps, &buf))
	assert.Contains(t, buf.String(), "No script")
}

func TestRun_QuitsOnKey(t *testing.T) {
	deps, err := NewDependencies(config.DefaultConfig(), "")
	require.NoError(t, err)
	defer deps.Close()

	err = Run(deps,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)

	for _, want := range []string{"--script", "--duration", "dismiss", "events:"} {
		assert.Contains(t, strings.ToLower(buf.String()), want)
	}
}
