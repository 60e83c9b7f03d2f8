package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/structpack/pack"
	"github.com/wippyai/structpack/registry"
)

func press(t *testing.T, m *interactiveModel, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	if next != m {
		t.Fatalf("Update returned a different model")
	}
	return cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInteractiveCustomFormat(t *testing.T) {
	m := newInteractiveModel(nil, pack.NewEncoder())
	if len(m.formats) != 1 || m.formats[0].name != customFormat {
		t.Fatalf("formats = %+v, want only the custom entry", m.formats)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateInputFormat {
		t.Fatalf("state = %v, want format input", m.state)
	}

	press(t, m, typeText("<hB"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateInputValues {
		t.Fatalf("state = %v, want value input (err %v)", m.state, m.err)
	}
	if len(m.inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(m.inputs))
	}

	press(t, m, typeText("-2"))
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, typeText("9"))

	cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on values returned no command")
	}
	press(t, m, cmd())

	if m.state != stateShowResult {
		t.Fatalf("state = %v, want result", m.state)
	}
	if m.err != nil {
		t.Fatalf("encode error: %v", m.err)
	}
	if !strings.HasPrefix(m.result, "feff09") {
		t.Errorf("result = %q, want hex feff09", m.result)
	}
	if !strings.Contains(m.View(), "3 bytes") {
		t.Errorf("view does not show size:\n%s", m.View())
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateSelectFormat || m.layout != nil {
		t.Errorf("state = %v after continue, want select", m.state)
	}
}

func TestInteractiveBadFormat(t *testing.T) {
	m := newInteractiveModel(nil, pack.NewEncoder())
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, typeText("1z"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateInputFormat || m.err == nil {
		t.Fatalf("state/err = %v/%v, want format input with error", m.state, m.err)
	}
	if !strings.Contains(m.View(), "invalid_character") {
		t.Errorf("view does not show the error:\n%s", m.View())
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateSelectFormat || m.err != nil {
		t.Errorf("esc did not reset: state %v err %v", m.state, m.err)
	}
}

func TestInteractiveRegistryEntries(t *testing.T) {
	reg, err := registry.Parse([]byte("formats:\n  pad:\n    format: \"<4x\"\n  pair:\n    format: \"<2B\"\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	m := newInteractiveModel(reg, pack.NewEncoder(pack.WithFill(0xee)))
	if len(m.formats) != 3 {
		t.Fatalf("got %d formats, want 3", len(m.formats))
	}

	// "pad" sorts first and has no slots, so it encodes immediately.
	cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected encode command for slotless layout")
	}
	press(t, m, cmd())
	if !strings.HasPrefix(m.result, "eeeeeeee") {
		t.Errorf("result = %q, want fill bytes", m.result)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}
	if !strings.Contains(m.View(), "tuple<u8, u8>") {
		t.Errorf("view does not show the signature:\n%s", m.View())
	}
}

func TestInteractiveQuit(t *testing.T) {
	m := newInteractiveModel(nil, pack.NewEncoder())
	cmd := press(t, m, typeText("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
