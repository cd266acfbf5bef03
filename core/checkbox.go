package core

// CheckAction describes what a checkbox did in response to input.
type CheckAction int

const (
	CheckActionNone CheckAction = iota
	CheckActionToggled
)

// CheckboxResult reports the outcome of Toggle or HandleKey. Value carries
// the boolean the change callback was invoked with; in controlled mode the
// displayed value only follows once the owner calls SetValue.
type CheckboxResult struct {
	Action CheckAction
	Value  bool
}

// Checkbox is a tri-state selection field. The underlying value is a plain
// boolean; indeterminate is a display-only override that user interaction
// never sets or clears.
//
// A checkbox runs in exactly one of two ownership modes, fixed at
// construction. Uncontrolled: the widget owns its value and mutates it on
// Toggle. Controlled: the owner supplies the value via SetValue and Toggle
// only requests a change through the callback. Internal storage exists in
// both modes but is authoritative only when uncontrolled.
type Checkbox struct {
	id            string
	label         string
	value         bool
	indeterminate bool
	disabled      bool
	controlled    bool
	variant       Variant
	glyphs        GlyphSet
	onChange      func(bool)
}

// NewCheckbox creates an uncontrolled checkbox with an initial default value.
// An empty id generates one.
func NewCheckbox(id, label string, defaultValue bool) *Checkbox {
	return &Checkbox{
		id:     widgetID(id),
		label:  label,
		value:  defaultValue,
		glyphs: GlyphsUnicode,
	}
}

// NewControlledCheckbox creates a checkbox whose displayed value is owned by
// the caller. Interaction raises the change callback; the display moves only
// when the owner calls SetValue.
func NewControlledCheckbox(id, label string, value bool) *Checkbox {
	c := NewCheckbox(id, label, value)
	c.controlled = true
	return c
}

func (c *Checkbox) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

func (c *Checkbox) Label() string {
	if c == nil {
		return ""
	}
	return c.label
}

func (c *Checkbox) Value() bool {
	if c == nil {
		return false
	}
	return c.value
}

func (c *Checkbox) Indeterminate() bool {
	if c == nil {
		return false
	}
	return c.indeterminate
}

func (c *Checkbox) Disabled() bool {
	if c == nil {
		return false
	}
	return c.disabled
}

func (c *Checkbox) Controlled() bool {
	if c == nil {
		return false
	}
	return c.controlled
}

// OnChange registers the change notification callback. It receives the next
// boolean value on every accepted toggle, in both ownership modes.
func (c *Checkbox) OnChange(fn func(bool)) {
	if c == nil {
		return
	}
	c.onChange = fn
}

// SetDisabled suppresses or re-enables interaction.
func (c *Checkbox) SetDisabled(disabled bool) {
	if c == nil {
		return
	}
	c.disabled = disabled
}

// SetIndeterminate sets the display override. The underlying boolean value
// is untouched.
func (c *Checkbox) SetIndeterminate(mixed bool) {
	if c == nil {
		return
	}
	c.indeterminate = mixed
}

// SetVariant sets the visual selectors.
func (c *Checkbox) SetVariant(v Variant) {
	if c == nil {
		return
	}
	c.variant = v
}

// SetGlyphs swaps the mark set.
func (c *Checkbox) SetGlyphs(g GlyphSet) {
	if c == nil {
		return
	}
	c.glyphs = g
}

// SetValue is the external value update. In controlled mode this is the only
// path that moves the displayed value; in uncontrolled mode it overwrites
// the internal state directly.
func (c *Checkbox) SetValue(v bool) {
	if c == nil {
		return
	}
	c.value = v
}

// Toggle requests the negation of the current boolean value. Disabled
// checkboxes ignore it silently. Indeterminate plays no part in computing
// the next value and is not cleared by toggling.
func (c *Checkbox) Toggle() CheckboxResult {
	if c == nil || c.disabled {
		return CheckboxResult{Action: CheckActionNone}
	}
	next := !c.value
	if !c.controlled {
		c.value = next
	}
	if c.onChange != nil {
		c.onChange(next)
	}
	return CheckboxResult{Action: CheckActionToggled, Value: next}
}

// HandleKey maps a key name to a toggle. Anything outside the activation
// set is ignored.
func (c *Checkbox) HandleKey(keyName string) CheckboxResult {
	switch keyName {
	case " ", "space", "enter":
		return c.Toggle()
	default:
		return CheckboxResult{Action: CheckActionNone}
	}
}

// AccessibleState is the semantic checked attribute exposed to assistive
// tooling: "mixed" while indeterminate, else the boolean value.
func (c *Checkbox) AccessibleState() string {
	if c == nil {
		return "false"
	}
	if c.indeterminate {
		return "mixed"
	}
	if c.value {
		return "true"
	}
	return "false"
}

func (c *Checkbox) mark() string {
	if c.indeterminate {
		return c.glyphs.Indeterminate
	}
	if c.value {
		return c.glyphs.Checked
	}
	return c.glyphs.Unchecked
}

// View renders the checkbox as a single line. The indeterminate glyph always
// wins over the boolean mark.
func (c *Checkbox) View(focused bool) string {
	if c == nil {
		return ""
	}
	style := MergeStyles(labelStyle, ResolveStyle(mergeVariant(Variant{}, c.variant)))
	if c.disabled {
		style = MergeStyles(style, disabledStyle)
	}
	prefix := "  "
	if focused && !c.disabled {
		prefix = focusMarkStyle.Render(c.glyphs.Focus) + " "
	}
	return prefix + style.Render(c.mark()+" "+c.label)
}
