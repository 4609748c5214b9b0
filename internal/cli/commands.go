package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/toaster/internal/app"
	"github.com/riordanpawley/toaster/internal/ui/toast"
)

// Run starts the TUI and blocks until it exits. Extra options are appended
// to the defaults (alt screen, all-motion mouse tracking).
func Run(deps *Dependencies, opts ...tea.ProgramOption) error {
	appOpts := app.Options{
		Store:  deps.Store,
		Logger: deps.Logger,
		Script: deps.Script,
	}
	// a nil *Metrics must not become a non-nil interface
	if deps.Metrics != nil {
		appOpts.Recorder = deps.Metrics
	}
	model := app.New(deps.Config, appOpts)

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, opts...)

	deps.Logger.Info("starting", "duration", deps.Config.Duration(), "max_active", deps.Config.Toast.MaxActive)
	final, err := tea.NewProgram(model, programOpts...).Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	deps.Logger.Info("exited", "remaining", deps.Store.Len())
	return nil
}

// CheckCommand prints the effective settings and the script timeline
func CheckCommand(deps *Dependencies, w io.Writer) error {
	cfg := deps.Config
	fmt.Fprintf(w, "Duration:   %s\n", cfg.Duration())
	fmt.Fprintf(w, "Width:      %d (min %d)\n", cfg.Toast.Width, toast.MinWidth)
	fmt.Fprintf(w, "Max active: %s\n", formatMax(cfg.Toast.MaxActive))

	if deps.Script == nil {
		fmt.Fprintln(w, "\nNo script")
		return nil
	}

	fmt.Fprintf(w, "\nScript (%d events):\n\n", len(deps.Script.Events))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AFTER\tTYPE\tTITLE")
	fmt.Fprintln(tw, "-----\t----\t-----")
	for _, ev := range deps.Script.Events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ev.After, ev.Kind(), ansi.Truncate(ev.Title, 60, "..."))
	}
	return tw.Flush()
}

// PrintSummary writes the lifecycle counters, if metrics are enabled
func PrintSummary(deps *Dependencies, w io.Writer) error {
	if deps.Metrics == nil {
		return nil
	}
	fmt.Fprintln(w, "Notification summary:")
	return deps.Metrics.WriteSummary(w)
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: toaster [options]

Shows transient notifications in the top-right corner of the terminal.

Keys:
  s e i w      Raise a success, error, info or warning notification
  x / X        Dismiss the newest / all notifications
  ?            Help
  q            Quit

Mouse:
  hover        Pause a notification's countdown
  click ✕      Dismiss it

Options:
  -c, --config <path>      Config file (default ./.toaster.json)
  -s, --script <path>      YAML script of notifications to replay
  -d, --duration <d>       Auto-dismiss duration, e.g. 5s or 2500ms
  -w, --width <n>          Maximum toast width in columns
      --max <n>            Maximum visible notifications (0 = unlimited)
      --log-file <path>    Write logs to a file
      --log-level <level>  debug, info, warn or error
      --metrics            Print lifecycle counters on exit (default true)
      --check              Validate config and script, print the timeline and exit
  -h, --help               Show this help message

Script format:
  events:
    - after: 500ms
      type: success
      title: Build finished
      message: 42 packages compiled
`
	fmt.Fprint(w, usage)
}

func formatMax(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}
