package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdahlbac/palettegen/colorspace"
	"github.com/sdahlbac/palettegen/contrast"
	"github.com/sdahlbac/palettegen/palette"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(ActiveBorder)
	lockStyle   = lipgloss.NewStyle().Foreground(Rosewater)
	hslStyle    = lipgloss.NewStyle().Foreground(Subtext0)
	swatchStyle = lipgloss.NewStyle().Padding(0, 2)
)

// entryItem adapts a palette entry to list.Item
type entryItem struct {
	palette.Entry
}

// FilterValue implements list.Item interface
func (e entryItem) FilterValue() string {
	return e.Hex
}

// swatchDelegate renders each entry as a single row: the colour itself,
// its HSL value, and how black and white text score on it.
type swatchDelegate struct {
	largeText bool
}

func (d swatchDelegate) Height() int { return 1 }
func (d swatchDelegate) Spacing() int { return 0 }
func (d swatchDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d swatchDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(entryItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.row(e.Entry, index == m.Index()))
}

func (d swatchDelegate) row(e palette.Entry, selected bool) string {
	hex, ok := colorspace.Canonical(e.Hex)
	if !ok {
		hex = e.Hex
	}

	var b strings.Builder
	if selected {
		b.WriteString(cursorStyle.Render("› "))
	} else {
		b.WriteString("  ")
	}
	if e.Locked {
		b.WriteString(lockStyle.Render("● "))
	} else {
		b.WriteString("  ")
	}
	b.WriteString(swatch(hex))
	b.WriteString("  ")
	b.WriteString(hslStyle.Render(fmt.Sprintf("%-20s", e.HSL)))
	b.WriteString(d.score("white", contrast.White, hex))
	b.WriteString("  ")
	b.WriteString(d.score("black", contrast.Black, hex))
	return b.String()
}

// score describes text in colour fg on bg, for example "white 5.37:1 AA".
func (d swatchDelegate) score(name, fg, bg string) string {
	r, ok := contrast.Check(fg, bg)
	if !ok {
		return ""
	}
	level := r.Normal
	if d.largeText {
		level = r.Large
	}
	return fmt.Sprintf("%s %5.2f:1 %s", name, r.Ratio, levelStyle(level).Render(fmt.Sprintf("%-4s", level)))
}

func levelStyle(l contrast.Level) lipgloss.Style {
	switch l {
	case contrast.AAA:
		return lipgloss.NewStyle().Foreground(Success)
	case contrast.AA:
		return lipgloss.NewStyle().Foreground(Info)
	default:
		return lipgloss.NewStyle().Foreground(Error)
	}
}

// swatch renders hex on a block of its own colour, labelled in whichever
// of black or white reads best.
func swatch(hex string) string {
	return swatchStyle.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(contrast.ReadableOn(hex))).
		Render(hex)
}

func accentsView(accents []palette.Accent) string {
	if len(accents) == 0 {
		return ""
	}
	parts := make([]string, len(accents))
	for i, a := range accents {
		parts[i] = swatch(a.Hex) + " " + hslStyle.Render(a.Label)
	}
	return hslStyle.Render("accents ") + strings.Join(parts, "  ")
}
