// Package main provides the entry point for the toaster TUI.
//
// toaster shows short-lived notifications stacked in the top-right corner of
// the terminal. Each one dismisses itself after a fixed duration, pauses
// while the mouse hovers it and can be dismissed early with its ✕ button.
//
// Usage:
//
//	toaster [options]
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/riordanpawley/toaster/internal/cli"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := cli.ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if flags.Help {
		cli.PrintUsage(os.Stdout)
		return 0
	}

	cfg, err := cli.LoadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	deps, err := cli.NewDependencies(cfg, flags.ScriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer deps.Close()
	slog.SetDefault(deps.Logger)

	if flags.Check {
		if err := cli.CheckCommand(deps, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := cli.Run(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := cli.PrintSummary(deps, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
