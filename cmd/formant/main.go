// Command formant converts, normalizes, summarizes and plots vowel formant
// measurements stored in CSV files.
//
// Usage:
//
//	formant [global flags] <command> [flags] <input>
//
// Commands:
//
//	bark      append Bark-scale columns (F1 -> z1)
//	lobanov   append per-group z-score columns (F1 -> zscF1)
//	describe  print per-group formant statistics
//	plot      draw an F1/F2 vowel plot
//	spectrum  print Bark band levels of a WAV frame
//
// Examples:
//
//	formant bark -formants F1,F2 vowels.csv > vowels_bark.csv
//	formant lobanov -group speaker -o norm.csv vowels.csv
//	formant describe -group speaker vowels.csv
//	formant plot -color speaker -log -o vowels.png vowels.csv
//	formant spectrum -at 0.25 -size 2048 vowel.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-formant/internal/logging"
)

// errUsage marks errors caused by bad invocation rather than bad data.
var errUsage = errors.New("usage error")

type env struct {
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(args []string, e env) error
}

var commands = []command{
	{"bark", "append Bark-scale columns (F1 -> z1)", runBark},
	{"lobanov", "append per-group z-score columns (F1 -> zscF1)", runLobanov},
	{"describe", "print per-group formant statistics", runDescribe},
	{"plot", "draw an F1/F2 vowel plot", runPlot},
	{"spectrum", "print Bark band levels of a WAV frame", runSpectrum},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("formant", flag.ContinueOnError)
	fs.SetOutput(stderr)

	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	format := fs.String("log-format", "text", "log format: text or json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: formant [flags] <command> [flags] <input>\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-9s %s\n", c.name, c.summary)
		}
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nRun 'formant <command> -h' for command flags.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logging.Setup(stderr, *level, *format)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	name := fs.Arg(0)

	var cmd *command
	for i := range commands {
		if commands[i].name == name {
			cmd = &commands[i]
			break
		}
	}

	if cmd == nil {
		slog.Error("unknown command", "command", name)
		fs.Usage()
		return 2
	}

	err := cmd.run(fs.Args()[1:], env{stdout: stdout, stderr: stderr})

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		slog.Error("invalid invocation", "command", cmd.name, "err", err)
		return 2
	default:
		slog.Error("command failed", "command", cmd.name, "err", err)
		return 1
	}
}
