package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"calcpad/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_TypingAndEvaluate(t *testing.T) {
	m, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m = press(t, m, runes("3"), runes("."), runes("5"), runes("*"), runes("2"))
	if got := m.Display().Expression; got != "3.5*2" {
		t.Fatalf("expression=%q, want %q", got, "3.5*2")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	want := domain.DisplayState{Expression: "7", Result: "7"}
	if got := m.Display(); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestModel_DeleteClearAndSign(t *testing.T) {
	m, err := New(&domain.Snapshot{Expression: "2+3"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("n"))
	if got := m.Display().Expression; got != "-2" {
		t.Fatalf("expression=%q, want %q", got, "-2")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Display(); got.Result != "0" || got.Expression != "" {
		t.Fatalf("after esc got %+v", got)
	}
}

func TestModel_ErrorShownInView(t *testing.T) {
	m, err := New(&domain.Snapshot{Expression: "5/0"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m = press(t, m, runes("="))

	if !m.Display().Error {
		t.Fatal("expected error display")
	}
	if !strings.Contains(m.View(), "Error") {
		t.Fatal("view does not show the error marker")
	}
	if got := m.Snapshot(); got.Expression != "5/0" || !got.Failed {
		t.Fatalf("snapshot=%+v", got)
	}
}

func TestModel_QuitAndIgnoredKeys(t *testing.T) {
	m, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyTab})
	if m.screen.renders != 0 {
		t.Fatalf("ignored keys rendered %d times", m.screen.renders)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c command is not tea.Quit")
	}
}

func TestModel_RestoreRejectsBadSnapshot(t *testing.T) {
	if _, err := New(&domain.Snapshot{Expression: "1+y"}, nil); err == nil {
		t.Fatal("expected error for invalid snapshot")
	}
}
