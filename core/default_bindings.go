package core

import "strings"

// Widget scopes used by the demo composition. A group only ever sees keys
// routed to its own scope.
const (
	ScopeChoice   = "widget:choice"
	ScopeCheckbox = "widget:checkbox"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"tab"}, Action: "focus-next", Description: "next field", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: "focus-prev", Description: "prev field", Scopes: []string{"*"}},
		{Keys: []string{"down", "right"}, Action: "choice-next", Description: "next option", Scopes: []string{ScopeChoice}},
		{Keys: []string{"up", "left"}, Action: "choice-prev", Description: "prev option", Scopes: []string{ScopeChoice}},
		{Keys: []string{"space", "enter"}, Action: "toggle", Description: "toggle", Scopes: []string{ScopeCheckbox}},
		{Keys: []string{"m"}, Action: "mixed", Description: "toggle mixed", Scopes: []string{ScopeCheckbox}},
	}
}

// DefaultKeybindingsByAction flattens a binding table into an action → keys
// map, first binding wins. Used to seed config overrides.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings rebinds actions whose key lists appear in
// actionKeys, leaving everything else untouched.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
