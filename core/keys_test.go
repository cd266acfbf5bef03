package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"down"}, Action: "choice-next", Scopes: []string{ScopeChoice}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyDown}, "choice-next", ScopeChoice) {
		t.Fatalf("expected down to match in the choice scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyDown}, "choice-next", ScopeCheckbox) {
		t.Fatalf("did not expect down to match outside the choice scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", ScopeCheckbox) {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistrySpaceKeyNormalization(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	msg := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if !reg.IsAction(msg, "toggle", ScopeCheckbox) {
		t.Fatalf("space should resolve to toggle in the checkbox scope")
	}
	if got := reg.ActionFor(msg, ScopeChoice); got == "toggle" {
		t.Fatalf("toggle must not leak into the choice scope")
	}
}

func TestActionForFirstMatchWins(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"x"}, Action: "first", Scopes: []string{"*"}},
		{Keys: []string{"x"}, Action: "second", Scopes: []string{"*"}},
	})
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if got := reg.ActionFor(msg, "anything"); got != "first" {
		t.Fatalf("ActionFor = %q, want first", got)
	}
}

func TestApplyActionKeybindingsOverrides(t *testing.T) {
	bindings := DefaultKeyBindings()
	overridden := ApplyActionKeybindings(bindings, map[string][]string{
		"choice-next": {"j"},
	})
	reg := NewKeyRegistry(overridden)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, "choice-next", ScopeChoice) {
		t.Fatalf("override should rebind choice-next to j")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyDown}, "choice-next", ScopeChoice) {
		t.Fatalf("original keys should be replaced, not merged")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyTab}, "focus-next", ScopeChoice) {
		t.Fatalf("untouched actions must keep their defaults")
	}
}

func TestDefaultKeybindingsByAction(t *testing.T) {
	m := DefaultKeybindingsByAction(DefaultKeyBindings())
	if len(m["quit"]) == 0 || m["quit"][0] != "q" {
		t.Fatalf("quit keys = %v", m["quit"])
	}
	if len(m["choice-next"]) != 2 {
		t.Fatalf("choice-next keys = %v, want down+right", m["choice-next"])
	}
}
