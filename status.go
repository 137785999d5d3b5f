package main

import (
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusTimeout is how long a status message stays on screen.
const StatusTimeout = 2 * time.Second

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
)

// statusModel is a one-line message that clears itself when its timer
// runs out.
type statusModel struct {
	text  string
	kind  statusKind
	timer timer.Model
}

func newStatusModel(text string, kind statusKind) statusModel {
	return statusModel{
		text:  text,
		kind:  kind,
		timer: timer.New(StatusTimeout),
	}
}

func (m statusModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m statusModel) Update(msg tea.Msg) (statusModel, tea.Cmd) {
	t, cmd := m.timer.Update(msg)
	m.timer = t
	return m, cmd
}

// owns reports whether a timer message belongs to this status.
func (m statusModel) owns(id int) bool {
	return m.text != "" && id == m.timer.ID()
}

func (m statusModel) View() string {
	if m.text == "" || m.timer.Timedout() {
		return ""
	}
	color := Info
	switch m.kind {
	case statusSuccess:
		color = Success
	case statusWarning:
		color = Warning
	}
	return lipgloss.
		NewStyle().
		Foreground(color).
		Render(m.text)
}
