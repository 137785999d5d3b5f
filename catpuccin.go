package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha colours used for the application chrome. Swatches are
// drawn in their own colours and never use these.
// Reference: https://github.com/catppuccin/catppuccin/tree/main
const (
	Rosewater = lipgloss.Color("#f5e0dc")
	Red       = lipgloss.Color("#f38ba8")
	Peach     = lipgloss.Color("#fab387")
	Green     = lipgloss.Color("#a6e3a1")
	Teal      = lipgloss.Color("#94e2d5")
	Lavender  = lipgloss.Color("#b4befe")

	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Overlay0 = lipgloss.Color("#6c7086")
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")

	// Semantic colors for application states
	ActiveBorder   = Lavender
	InactiveBorder = Overlay0
	Success        = Green
	Warning        = Peach
	Error          = Red
	Info           = Teal
)
