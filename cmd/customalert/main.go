// Package main provides the entry point for the customalert demo.
//
// customalert is a terminal screen with three buttons, each presenting a
// modal dialog in a different way: a system alert, a confirmation sheet,
// and a custom card that slides in from below the screen.
//
// Usage:
//
//	customalert [flags]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/riordanpawley/customalert/internal/app"
	"github.com/riordanpawley/customalert/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are the parsed command line flags
type options struct {
	configPath  string
	writeConfig string
	logFile     string
	logLevel    string
	noAltScreen bool
	noMouse     bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("customalert", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "config file (.json, .jsonc, .yaml); default: ./.customalert.json or ./.customalert.yaml")
	flagSet.StringVar(&opts.writeConfig, "write-config", "", "write the effective config to this file and exit")
	flagSet.StringVar(&opts.logFile, "log-file", "", "append log records to this file (logs are discarded otherwise)")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	flagSet.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flagSet.BoolVarP(&opts.showHelp, "help", "h", false, "show help")
	return flagSet
}

func parseFlags(args []string) (options, *pflag.FlagSet, error) {
	var opts options
	flagSet := newFlagSet(&opts)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.showHelp = true
			return opts, flagSet, nil
		}
		return opts, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, flagSet, nil
}

func run(args []string) error {
	opts, flagSet, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.showHelp {
		printHelp(flagSet)
		return nil
	}
	if opts.showVersion {
		fmt.Println("customalert", version)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.writeConfig != "" {
		if err := config.SaveConfig(cfg, opts.writeConfig); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", opts.writeConfig)
		return nil
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	programOpts := []tea.ProgramOption{}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	slog.Info("starting", "version", version, "animation", !cfg.Animation.Disabled)
	program := tea.NewProgram(app.New(cfg), programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging installs the default slog logger. The TUI owns the
// terminal, so records only go to a file.
func setupLogging(cfg config.LogConfig) (func() error, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.File == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() error { return nil }, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})))
	return file.Close, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `customalert: three ways to present a modal dialog in the terminal.

Buttons:
  Show Custom Alert         card slides in from below; Cancel/Continue close it
  Show Alert                system-style alert with a destructive action
  Show Confirmation Dialog  action sheet anchored to the bottom edge

Usage:
  customalert [flags]

Examples:
  # Run with the config in the current directory
  customalert

  # Log flag changes and button presses
  customalert --log-file /tmp/customalert.log --log-level debug

  # Start from a copy of the defaults
  customalert --write-config .customalert.yaml

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
