package core

import (
	"strings"
	"testing"
)

func TestToggleParityUncontrolled(t *testing.T) {
	for _, start := range []bool{false, true} {
		for n := 0; n < 6; n++ {
			c := NewCheckbox("cb", "Notify", start)
			for i := 0; i < n; i++ {
				c.Toggle()
			}
			want := start != (n%2 == 1)
			if c.Value() != want {
				t.Fatalf("start=%v toggles=%d value=%v, want %v", start, n, c.Value(), want)
			}
		}
	}
}

func TestToggleDisabledIsSilentNoop(t *testing.T) {
	c := NewCheckbox("cb", "Notify", true)
	c.SetDisabled(true)
	fired := false
	c.OnChange(func(bool) { fired = true })

	res := c.Toggle()
	if res.Action != CheckActionNone {
		t.Fatalf("action = %v, want %v", res.Action, CheckActionNone)
	}
	if fired {
		t.Fatalf("disabled toggle must not invoke the change callback")
	}
	if !c.Value() {
		t.Fatalf("disabled toggle must not mutate the value")
	}
}

func TestToggleAlwaysNotifiesWithNextValue(t *testing.T) {
	c := NewCheckbox("cb", "Notify", false)
	var got []bool
	c.OnChange(func(v bool) { got = append(got, v) })

	c.Toggle()
	c.Toggle()
	c.Toggle()
	want := []bool{true, false, true}
	if len(got) != len(want) {
		t.Fatalf("callback count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("callback[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestControlledToggleLeavesDisplayUntilSetValue(t *testing.T) {
	c := NewControlledCheckbox("cb", "Notify", false)
	var notified bool
	var next bool
	c.OnChange(func(v bool) { notified, next = true, v })

	res := c.Toggle()
	if !notified || next != true {
		t.Fatalf("controlled toggle should notify with true; notified=%v next=%v", notified, next)
	}
	if res.Action != CheckActionToggled || res.Value != true {
		t.Fatalf("result = %+v, want toggled/true", res)
	}
	if c.Value() {
		t.Fatalf("controlled value must not move before the owner supplies it")
	}

	c.SetValue(true)
	if !c.Value() {
		t.Fatalf("SetValue should move the displayed value")
	}
}

func TestIndeterminateDoesNotTouchBooleanValue(t *testing.T) {
	c := NewCheckbox("cb", "Notify", true)
	c.SetIndeterminate(true)
	if !c.Value() {
		t.Fatalf("setting indeterminate must not change the boolean value")
	}
	c.SetIndeterminate(false)
	if !c.Value() {
		t.Fatalf("clearing indeterminate must not change the boolean value")
	}
}

func TestToggleWhileIndeterminateFlipsValueKeepsMixed(t *testing.T) {
	// scenario from the accessibility contract: indeterminate=true,
	// default unchecked
	c := NewCheckbox("cb", "Notify", false)
	c.SetIndeterminate(true)

	if got := c.AccessibleState(); got != "mixed" {
		t.Fatalf("accessible state = %q, want mixed", got)
	}
	c.Toggle()
	if !c.Value() {
		t.Fatalf("toggle while indeterminate should flip the boolean value")
	}
	if got := c.AccessibleState(); got != "mixed" {
		t.Fatalf("accessible state = %q, want mixed until caller clears it", got)
	}
	c.SetIndeterminate(false)
	if got := c.AccessibleState(); got != "true" {
		t.Fatalf("accessible state = %q, want true after clearing indeterminate", got)
	}
}

func TestAccessibleStateBooleanMapping(t *testing.T) {
	c := NewCheckbox("cb", "Notify", false)
	if got := c.AccessibleState(); got != "false" {
		t.Fatalf("accessible state = %q, want false", got)
	}
	c.Toggle()
	if got := c.AccessibleState(); got != "true" {
		t.Fatalf("accessible state = %q, want true", got)
	}
}

func TestHandleKeyActivationSet(t *testing.T) {
	tests := []struct {
		key  string
		want CheckAction
	}{
		{" ", CheckActionToggled},
		{"space", CheckActionToggled},
		{"enter", CheckActionToggled},
		{"x", CheckActionNone},
		{"down", CheckActionNone},
	}
	for _, tt := range tests {
		c := NewCheckbox("cb", "Notify", false)
		if got := c.HandleKey(tt.key).Action; got != tt.want {
			t.Fatalf("HandleKey(%q) action = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestViewShowsIndeterminateGlyphOverValue(t *testing.T) {
	c := NewCheckbox("cb", "Notify", true)
	c.SetGlyphs(GlyphsASCII)
	if !strings.Contains(c.View(false), GlyphsASCII.Checked) {
		t.Fatalf("checked view should show the checked mark")
	}
	c.SetIndeterminate(true)
	view := c.View(false)
	if !strings.Contains(view, GlyphsASCII.Indeterminate) {
		t.Fatalf("indeterminate view should show the mixed mark, got %q", view)
	}
	if strings.Contains(view, GlyphsASCII.Checked) {
		t.Fatalf("mixed mark must override the boolean mark, got %q", view)
	}
}

func TestGeneratedIDIsStable(t *testing.T) {
	c := NewCheckbox("", "Notify", false)
	if c.ID() == "" {
		t.Fatalf("empty id should generate one")
	}
	if c.ID() != c.ID() {
		t.Fatalf("generated id must be cached for the instance lifetime")
	}
	named := NewCheckbox("notify", "Notify", false)
	if named.ID() != "notify" {
		t.Fatalf("caller-supplied id should win, got %q", named.ID())
	}
}

func TestNilCheckboxIsInert(t *testing.T) {
	var c *Checkbox
	if res := c.Toggle(); res.Action != CheckActionNone {
		t.Fatalf("nil toggle should be a no-op")
	}
	if got := c.AccessibleState(); got != "false" {
		t.Fatalf("nil accessible state = %q, want false", got)
	}
	if c.View(true) != "" {
		t.Fatalf("nil view should be empty")
	}
}
