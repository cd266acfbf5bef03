package core

import (
	"fmt"
	"unicode"
)

// Focusable is one stop on the focus ring. Exactly one focusable holds focus
// at a time; key events are routed to its scope only.
type Focusable interface {
	ID() string
	Scope() string
	JumpKey() byte
}

// FocusRing orders focusables and moves focus among them with tab cycling
// and single-key jumps.
type FocusRing struct {
	items   []Focusable
	focused int
}

// NewFocusRing builds a ring over the given focusables. Each must declare a
// unique alphanumeric jump key.
func NewFocusRing(items ...Focusable) FocusRing {
	seen := make(map[byte]string, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		key := normalizeJumpKey(item.JumpKey())
		if key == 0 {
			panic(fmt.Sprintf("focusable %q must declare a single alphanumeric jump key", item.ID()))
		}
		if other, exists := seen[key]; exists {
			panic(fmt.Sprintf("duplicate jump key %q across focusables %q and %q", string(key), other, item.ID()))
		}
		seen[key] = item.ID()
	}
	return FocusRing{items: items}
}

func (r FocusRing) Len() int {
	return len(r.items)
}

func (r FocusRing) Index() int {
	return r.focused
}

func (r FocusRing) Focused() Focusable {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.focused]
}

// Scope returns the focused item's scope, or "app" for an empty ring.
func (r FocusRing) Scope() string {
	if f := r.Focused(); f != nil {
		return f.Scope()
	}
	return "app"
}

// Next advances focus circularly.
func (r *FocusRing) Next() {
	if len(r.items) == 0 {
		return
	}
	r.focused = (r.focused + 1) % len(r.items)
}

// Prev moves focus back circularly.
func (r *FocusRing) Prev() {
	if len(r.items) == 0 {
		return
	}
	r.focused = (r.focused - 1 + len(r.items)) % len(r.items)
}

// JumpTo focuses the item declaring the given jump key. Reports whether a
// jump happened.
func (r *FocusRing) JumpTo(key byte) bool {
	want := normalizeJumpKey(key)
	if want == 0 {
		return false
	}
	for i, item := range r.items {
		if item == nil {
			continue
		}
		if normalizeJumpKey(item.JumpKey()) == want {
			r.focused = i
			return true
		}
	}
	return false
}

func normalizeJumpKey(key byte) byte {
	ru := rune(key)
	if !unicode.IsLetter(ru) && !unicode.IsDigit(ru) {
		return 0
	}
	return byte(unicode.ToLower(ru))
}
