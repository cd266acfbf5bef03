package core

// GlyphSet supplies the marks a widget renders for its states. Widgets never
// interpret the strings; they pick one by state and print it.
type GlyphSet struct {
	Checked       string
	Unchecked     string
	Indeterminate string
	Selected      string
	Unselected    string
	Focus         string
}

// GlyphsUnicode is the default mark set.
var GlyphsUnicode = GlyphSet{
	Checked:       "☑",
	Unchecked:     "☐",
	Indeterminate: "◪",
	Selected:      "◉",
	Unselected:    "○",
	Focus:         "▸",
}

// GlyphsASCII is a plain-terminal fallback.
var GlyphsASCII = GlyphSet{
	Checked:       "[x]",
	Unchecked:     "[ ]",
	Indeterminate: "[-]",
	Selected:      "(*)",
	Unselected:    "( )",
	Focus:         ">",
}
