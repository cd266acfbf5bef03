package core

import "github.com/charmbracelet/lipgloss"

// Size selects the rendered footprint of a widget. The zero value inherits
// the enclosing group's size, falling back to SizeMedium at the top level.
type Size int

const (
	SizeInherit Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "inherit"
	}
}

// Intent selects the color treatment of a widget. The zero value inherits
// the enclosing group's intent, falling back to IntentNeutral at the top level.
type Intent int

const (
	IntentInherit Intent = iota
	IntentNeutral
	IntentPrimary
	IntentSuccess
	IntentWarning
	IntentDanger
)

func (i Intent) String() string {
	switch i {
	case IntentNeutral:
		return "neutral"
	case IntentPrimary:
		return "primary"
	case IntentSuccess:
		return "success"
	case IntentWarning:
		return "warning"
	case IntentDanger:
		return "danger"
	default:
		return "inherit"
	}
}

// Variant is the pair of selectors a widget exposes to callers. Widgets treat
// the resolved style as opaque; all mapping lives here.
type Variant struct {
	Size   Size
	Intent Intent
}

func intentColor(i Intent) lipgloss.Color {
	switch i {
	case IntentPrimary:
		return colorAccent
	case IntentSuccess:
		return colorSuccess
	case IntentWarning:
		return colorWarning
	case IntentDanger:
		return colorError
	default:
		return colorText
	}
}

// ResolveStyle maps a variant to a presentation style. Unset selectors
// resolve to SizeMedium / IntentNeutral.
func ResolveStyle(v Variant) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(intentColor(v.Intent))
	switch v.Size {
	case SizeSmall:
		style = style.Faint(true)
	case SizeLarge:
		style = style.Bold(true).Padding(0, 1)
	}
	return style
}

// MergeStyles layers an override on top of a base style. Properties unset on
// the override are taken from the base, mirroring class-merge semantics.
func MergeStyles(base, override lipgloss.Style) lipgloss.Style {
	return override.Inherit(base)
}

// mergeVariant fills unset selectors on child from parent.
func mergeVariant(parent, child Variant) Variant {
	out := child
	if out.Size == SizeInherit {
		out.Size = parent.Size
	}
	if out.Intent == IntentInherit {
		out.Intent = parent.Intent
	}
	if out.Size == SizeInherit {
		out.Size = SizeMedium
	}
	if out.Intent == IntentInherit {
		out.Intent = IntentNeutral
	}
	return out
}
