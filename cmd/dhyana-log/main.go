// Command dhyana-log views and analyzes Dhyana device event logs.
//
// Event logs are written by dhyana-device when started with the -event-log
// flag.
//
// Usage:
//
//	dhyana-log <command> [flags] <file.dlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSONL or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	dhyana-log view camera.dlog
//
//	# View only device accesses to the temperature attribute
//	dhyana-log view -category access -name temperature camera.dlog
//
//	# View failed requests and accesses
//	dhyana-log view -failed camera.dlog
//
//	# Export one session to CSV
//	dhyana-log export -format csv -session 3f2a9c1e-... camera.dlog
//
//	# Show statistics
//	dhyana-log stats camera.dlog
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dhyana-lima/dhyana-go/cmd/dhyana-log/commands"
)

const usage = `dhyana-log - Dhyana Device Event Log Analyzer

Usage:
  dhyana-log <command> [flags] <file.dlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSONL or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "dhyana-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "export":
		err = runExport(args)
	case "filter":
		err = runFilter(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set whose usage prints summary and the flags.
func newFlagSet(name, summary string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "dhyana-log %s - %s\n\nUsage:\n  dhyana-log %s [flags] <file.dlog>\n\nFlags:\n",
			name, summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// filterFlags registers the event selection flags on fs.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.DeviceName, "device", "", "Filter by device name")
	fs.StringVar(&opts.Name, "name", "", "Filter by attribute or command name")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (transport, wire, device)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, control, state, error, access)")
	fs.BoolVar(&opts.FailedOnly, "failed", false, "Only show errors and failed operations")
	return opts
}

// logPath parses args and returns the single positional log file path.
func logPath(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", errors.New("log file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs := newFlagSet("view", "View log file in human-readable format")
	opts := filterFlags(fs)

	path, err := logPath(fs, args)
	if err != nil {
		return err
	}
	filter, err := opts.Build()
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, os.Stdout)
}

func runExport(args []string) error {
	fs := newFlagSet("export", "Export log file to JSONL or CSV format")
	format := fs.String("format", commands.FormatJSONL, "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	opts := filterFlags(fs)

	path, err := logPath(fs, args)
	if err != nil {
		return err
	}
	filter, err := opts.Build()
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output, filter)
}

func runFilter(args []string) error {
	fs := newFlagSet("filter", "Filter log file and write to new file")
	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)

	path, err := logPath(fs, args)
	if err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return errors.New("output file (-o) required")
	}
	return commands.RunFilter(path, *output, *opts, os.Stdout)
}

func runStats(args []string) error {
	fs := newFlagSet("stats", "Show statistics about the log file")

	path, err := logPath(fs, args)
	if err != nil {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
