package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Option is the static descriptor for one choice within a group. Key must be
// unique within the group. Variant selectors left at their zero value inherit
// the group's.
type Option struct {
	Key         string
	Label       string
	Description string
	Disabled    bool
	Variant     Variant
}

// Orientation is layout-only; it has no behavioral effect on navigation.
type Orientation int

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// ChoiceAction describes what a choice group did in response to input.
type ChoiceAction int

const (
	ChoiceActionNone ChoiceAction = iota
	// ChoiceActionMoved: focus advanced but the landed option is disabled,
	// so no selection was made and no callback fired.
	ChoiceActionMoved
	ChoiceActionSelected
)

// ChoiceResult reports the outcome of Select or HandleKey. Key identifies
// the option the change callback was invoked with (or, for Moved, the option
// focus landed on).
type ChoiceResult struct {
	Action ChoiceAction
	Key    string
}

// ChoiceGroup is a single-selection group over an ordered, fixed registry of
// options. At most one option is selected at any time.
//
// Ownership mode mirrors Checkbox: uncontrolled groups mutate their own
// selection on Select; controlled groups only raise the callback and wait
// for the owner to call SetValue. The focus index used by keyboard cycling
// is always internal and moves in both modes.
type ChoiceGroup struct {
	name        string
	options     []Option
	selected    string
	focus       int
	controlled  bool
	orientation Orientation
	variant     Variant
	glyphs      GlyphSet
	onChange    func(string)
}

// NewChoiceGroup creates an uncontrolled group with a default selection.
// An empty name generates one. Options repeating an earlier key are dropped.
func NewChoiceGroup(name string, options []Option, defaultValue string) *ChoiceGroup {
	g := &ChoiceGroup{
		name:   widgetID(name),
		glyphs: GlyphsUnicode,
	}
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if opt.Key == "" || seen[opt.Key] {
			continue
		}
		seen[opt.Key] = true
		g.options = append(g.options, opt)
	}
	g.selected = defaultValue
	if idx := g.indexOf(defaultValue); idx >= 0 {
		g.focus = idx
	}
	return g
}

// NewControlledChoiceGroup creates a group whose displayed selection is
// owned by the caller and updated via SetValue.
func NewControlledChoiceGroup(name string, options []Option, value string) *ChoiceGroup {
	g := NewChoiceGroup(name, options, value)
	g.controlled = true
	return g
}

func (g *ChoiceGroup) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// Options returns a copy of the group's option registry in declaration order.
func (g *ChoiceGroup) Options() []Option {
	if g == nil {
		return nil
	}
	return append([]Option(nil), g.options...)
}

func (g *ChoiceGroup) Selected() string {
	if g == nil {
		return ""
	}
	return g.selected
}

// FocusedKey returns the key of the option keyboard cycling currently sits
// on. Disabled options can hold focus; see HandleKey.
func (g *ChoiceGroup) FocusedKey() string {
	if g == nil || len(g.options) == 0 {
		return ""
	}
	return g.options[g.focus].Key
}

func (g *ChoiceGroup) Controlled() bool {
	if g == nil {
		return false
	}
	return g.controlled
}

// OnChange registers the change notification callback. It receives the
// selected key on every accepted selection, in both ownership modes.
func (g *ChoiceGroup) OnChange(fn func(string)) {
	if g == nil {
		return
	}
	g.onChange = fn
}

// SetOrientation sets the rendering direction. Navigation is unaffected.
func (g *ChoiceGroup) SetOrientation(o Orientation) {
	if g == nil {
		return
	}
	g.orientation = o
}

// SetVariant sets the group-level visual selectors, inherited by every
// option that does not override them.
func (g *ChoiceGroup) SetVariant(v Variant) {
	if g == nil {
		return
	}
	g.variant = v
}

// SetGlyphs swaps the mark set.
func (g *ChoiceGroup) SetGlyphs(g2 GlyphSet) {
	if g == nil {
		return
	}
	g.glyphs = g2
}

// SetValue is the external selection update. Any option not matching the
// supplied key renders unselected; a key matching no option leaves the whole
// group unselected. Focus follows the key when it names a known option.
func (g *ChoiceGroup) SetValue(key string) {
	if g == nil {
		return
	}
	g.selected = key
	if idx := g.indexOf(key); idx >= 0 {
		g.focus = idx
	}
}

func (g *ChoiceGroup) indexOf(key string) int {
	for i, opt := range g.options {
		if opt.Key == key {
			return i
		}
	}
	return -1
}

// Select requests selection of the option with the given key. Unknown keys
// and disabled options are ignored silently, without invoking the callback.
func (g *ChoiceGroup) Select(key string) ChoiceResult {
	if g == nil {
		return ChoiceResult{Action: ChoiceActionNone}
	}
	idx := g.indexOf(key)
	if idx < 0 || g.options[idx].Disabled {
		return ChoiceResult{Action: ChoiceActionNone}
	}
	g.focus = idx
	if !g.controlled {
		g.selected = key
	}
	if g.onChange != nil {
		g.onChange(key)
	}
	return ChoiceResult{Action: ChoiceActionSelected, Key: key}
}

// HandleKey drives the keyboard navigation state machine. Down/right advance
// focus to the next option in declaration order, up/left to the previous,
// wrapping circularly; the landed option is then selected immediately
// (focus follows selection).
//
// Index arithmetic deliberately includes disabled options: focus lands on
// them and the selection attempt degrades to a no-op. The host routes keys
// here only while this group holds focus.
func (g *ChoiceGroup) HandleKey(keyName string) ChoiceResult {
	if g == nil || len(g.options) == 0 {
		return ChoiceResult{Action: ChoiceActionNone}
	}
	switch normalizeKey(keyName) {
	case "down", "right":
		return g.step(1)
	case "up", "left":
		return g.step(-1)
	default:
		return ChoiceResult{Action: ChoiceActionNone}
	}
}

func (g *ChoiceGroup) step(delta int) ChoiceResult {
	n := len(g.options)
	g.focus = (g.focus + delta + n) % n
	opt := g.options[g.focus]
	if opt.Disabled {
		return ChoiceResult{Action: ChoiceActionMoved, Key: opt.Key}
	}
	if !g.controlled {
		g.selected = opt.Key
	}
	if g.onChange != nil {
		g.onChange(opt.Key)
	}
	return ChoiceResult{Action: ChoiceActionSelected, Key: opt.Key}
}

func (g *ChoiceGroup) optionLine(opt Option, focused bool) string {
	mark := g.glyphs.Unselected
	if opt.Key == g.selected {
		mark = g.glyphs.Selected
	}
	style := MergeStyles(labelStyle, ResolveStyle(mergeVariant(g.variant, opt.Variant)))
	if opt.Disabled {
		style = MergeStyles(style, disabledStyle)
	}
	prefix := "  "
	if focused {
		prefix = focusMarkStyle.Render(g.glyphs.Focus) + " "
	}
	line := prefix + style.Render(mark+" "+opt.Label)
	if opt.Description != "" && g.orientation == OrientationVertical {
		line += descriptionStyle.Render(" — " + opt.Description)
	}
	return line
}

// View renders the option registry in declaration order. focused marks the
// whole group; the focus glyph sits on the internally focused option.
func (g *ChoiceGroup) View(focused bool) string {
	if g == nil || len(g.options) == 0 {
		return ""
	}
	lines := make([]string, 0, len(g.options))
	for i, opt := range g.options {
		lines = append(lines, g.optionLine(opt, focused && i == g.focus))
	}
	if g.orientation == OrientationHorizontal {
		parts := make([]string, 0, len(lines)*2-1)
		for i, line := range lines {
			if i > 0 {
				parts = append(parts, "  ")
			}
			parts = append(parts, line)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return strings.Join(lines, "\n")
}
