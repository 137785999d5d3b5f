package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewStatusModel(t *testing.T) {
	model := newStatusModel("Copied #112233", statusSuccess)

	if model.text != "Copied #112233" {
		t.Errorf("Expected text to be kept, got %q", model.text)
	}
	if model.timer.Timeout != StatusTimeout {
		t.Errorf("Expected timeout %v, got %v", StatusTimeout, model.timer.Timeout)
	}
	if !model.owns(model.timer.ID()) {
		t.Error("Expected status to own its timer")
	}
}

func TestStatusModel_Init(t *testing.T) {
	model := newStatusModel("hello", statusInfo)
	if model.Init() == nil {
		t.Error("Expected Init to return a command")
	}
}

func TestStatusModel_Update(t *testing.T) {
	model := newStatusModel("hello", statusInfo)

	updated, _ := model.Update(tea.KeyMsg{})
	if updated.text != model.text || updated.timer.ID() != model.timer.ID() {
		t.Error("Expected unrelated messages to leave the status alone")
	}
}

func TestStatusModel_View(t *testing.T) {
	for _, kind := range []statusKind{statusInfo, statusSuccess, statusWarning} {
		model := newStatusModel("Imported 3 colours", kind)
		if view := model.View(); !strings.Contains(view, "Imported 3 colours") {
			t.Errorf("Expected text in view, got %q", view)
		}
	}

	expired := newStatusModel("gone", statusInfo)
	expired.timer.Timeout = 0
	if view := expired.View(); view != "" {
		t.Errorf("Expected empty view once timed out, got %q", view)
	}

	if view := (statusModel{}).View(); view != "" {
		t.Errorf("Expected empty view for zero status, got %q", view)
	}
}

func TestStatusModel_ZeroOwnsNothing(t *testing.T) {
	var model statusModel
	if model.owns(0) {
		t.Error("Expected an empty status to own no timer")
	}
}
