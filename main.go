// Package main implements a terminal colour palette generator.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdahlbac/palettegen/clipboard"
	"github.com/sdahlbac/palettegen/codec"
	"github.com/sdahlbac/palettegen/palette"
)

// Application constants
const (
	// ExitCodeSuccess indicates successful program execution
	ExitCodeSuccess = 0
	// ExitCodeError indicates an error occurred during execution
	ExitCodeError = 1

	// Environment variables
	EnvDebug  = "DEBUG"
	EnvConfig = "PALETTEGEN_CONFIG"

	// DebugLogFile receives log output when DEBUG is set
	DebugLogFile = "debug.log"

	// UI text
	AppTitle          = "Palette Generator"
	BasePlaceholder   = "#3366cc"
	ImportPlaceholder = "paste a share code"
)

// Application errors
var (
	ErrInvalidBase      = errors.New("invalid base colour")
	ErrInvalidShareCode = errors.New("invalid share code")
	ErrEmptyPalette     = errors.New("palette is empty")
	ErrClipboard        = errors.New("could not copy to the clipboard")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// AppError pairs an error with a hint shown to the user.
type AppError struct {
	Type       ErrorType
	Err        error
	Suggestion string
}

func (e AppError) Error() string {
	return e.Err.Error()
}

func (e AppError) Unwrap() error {
	return e.Err
}

type ErrorType int

const (
	ErrorTypeInput ErrorType = iota
	ErrorTypeClipboard
	ErrorTypeConfig
	ErrorTypeUnknown
)

// classifyError maps err to an AppError with a suggestion.
func classifyError(err error) *AppError {
	switch {
	case errors.Is(err, ErrInvalidBase):
		return &AppError{
			Err:        err,
			Type:       ErrorTypeInput,
			Suggestion: "Use six hex digits, with or without '#', for example #3366cc.",
		}
	case errors.Is(err, ErrInvalidShareCode), errors.Is(err, ErrEmptyPalette):
		return &AppError{
			Err:        err,
			Type:       ErrorTypeInput,
			Suggestion: "Paste the whole code produced by the share key 'S'.",
		}
	case errors.Is(err, ErrClipboard):
		return &AppError{
			Err:        err,
			Type:       ErrorTypeClipboard,
			Suggestion: "Install xclip, xsel or wl-clipboard, or use a terminal with OSC 52 support.",
		}
	case errors.Is(err, ErrInvalidConfig):
		return &AppError{
			Err:        err,
			Type:       ErrorTypeConfig,
			Suggestion: fmt.Sprintf("Check the config file, or point %s at another one.", EnvConfig),
		}
	default:
		return &AppError{
			Err:        err,
			Type:       ErrorTypeUnknown,
			Suggestion: "An unexpected error occurred. Please try again.",
		}
	}
}

// Global styles
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Dimensions are stored globally for simplicity in this small app
	width, height int
)

// AppState represents the current state of the application
type AppState int

const (
	StateBrowsing AppState = iota
	StateEditingBase
	StateImporting
	StateError
)

func (s AppState) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateEditingBase:
		return "editing base"
	case StateImporting:
		return "importing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// newLogger returns the logger handed to the libraries. Output goes to
// DebugLogFile when DEBUG is set and is discarded otherwise, so it never
// draws over the TUI. The returned close function is never nil.
func newLogger() (*slog.Logger, func() error, error) {
	if _, ok := os.LookupEnv(EnvDebug); !ok {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(DebugLogFile, "palettegen")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

// main is the entry point of the application
func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCodeError)
	}
}

// run executes the main application logic. The first argument, if any, is
// a share code to import at start-up.
func run(args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	path, err := configPath()
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", path, "strategy", cfg.Strategy, "count", cfg.Count)

	app := NewApp(cfg, Services{
		Generator: palette.New(),
		Codec:     codec.New(logger),
		Copier:    clipboard.New(nil, logger),
		Logger:    logger,
	})
	if len(args) > 0 {
		app.Import(args[0])
	}

	program := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI application: %w", err)
	}

	return nil
}
