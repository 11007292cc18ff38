package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apppkg "github.com/kk-code-lab/spike/internal/app"
	"github.com/kk-code-lab/spike/internal/terminal"
)

func printHelp() {
	fmt.Print(`spike - Terminal-based text editor

USAGE:
    spike [OPTIONS] [FILE]

OPTIONS:
    -h, --help            Show this help message and exit
    --debug-log PATH      Append debug logging to PATH

KEYS:
    Ctrl-S   save
    Ctrl-Q   quit
    Ctrl-F   find
`)
}

func main() {
	// Logging is off unless a debug log file is requested; the
	// terminal is in raw mode, so stderr is not a usable sink.
	log.Logger = zerolog.Nop()

	filename := ""
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "--debug-log":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "spike: --debug-log requires a path")
				os.Exit(1)
			}
			i++
			openDebugLog(args[i])
		case strings.HasPrefix(arg, "--debug-log="):
			openDebugLog(strings.TrimPrefix(arg, "--debug-log="))
		default:
			filename = arg
		}
	}

	if err := run(filename); err != nil {
		fmt.Fprintf(os.Stderr, "spike: %v\n", err)
		os.Exit(1)
	}
}

func openDebugLog(path string) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spike: cannot open debug log: %v\n", err)
		os.Exit(1)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func run(filename string) error {
	tty, err := terminal.Open()
	if err != nil {
		return err
	}
	defer tty.Close()

	if err := tty.EnableRaw(); err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	// Restore cooked mode on every exit path so the shell comes back
	// usable even after a failure.
	defer tty.Restore()

	editor, err := apppkg.New(tty)
	if err != nil {
		return err
	}
	editor.SetStatus("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	if filename != "" {
		if err := editor.OpenFile(filename); err != nil {
			return err
		}
	}

	if err := editor.Run(); err != nil {
		tty.Restore()
		return err
	}
	return nil
}
