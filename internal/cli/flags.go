package cli

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// Flags holds the command-line options. Zero values leave the config alone.
type Flags struct {
	ConfigPath string
	ScriptPath string
	LogFile    string
	LogLevel   string
	Duration   time.Duration
	Width      int
	MaxActive  int
	Metrics    bool
	Check      bool
	Help       bool

	// set records which flags were given explicitly
	set map[string]bool
}

// ParseFlags parses args (without the program name)
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("toaster", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (default ./.toaster.json)")
	fs.StringVarP(&f.ScriptPath, "script", "s", "", "YAML script of notifications to replay")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.DurationVarP(&f.Duration, "duration", "d", 0, "Auto-dismiss duration (default 5s)")
	fs.IntVarP(&f.Width, "width", "w", 0, "Maximum toast width in columns")
	fs.IntVar(&f.MaxActive, "max", 0, "Maximum visible notifications, oldest evicted first (0 = unlimited)")
	fs.BoolVar(&f.Metrics, "metrics", true, "Print lifecycle counters on exit")
	fs.BoolVar(&f.Check, "check", false, "Validate config and script, print the timeline and exit")
	fs.BoolVarP(&f.Help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}

// IsSet reports whether the named flag was given on the command line
func (f *Flags) IsSet(name string) bool {
	return f.set[name]
}
