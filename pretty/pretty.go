package pretty

import "strings"

// IndentStyle selects the indent unit for rendered output.
type IndentStyle int

const (
	// Spaces indents with IndentWidth spaces per level.
	Spaces IndentStyle = iota
	// Tabs indents with one tab per level.
	Tabs
)

const (
	// IndentWidth is the number of spaces per indent level.
	IndentWidth = 4
	// MaxDepth is the struct expansion limit for Render.
	MaxDepth = 10
	// DefaultSeparatorWidth is the rule width used by Separator(0).
	DefaultSeparatorWidth = 80
)

// Indent prefixes every line of s with level repetitions of the indent
// unit. A trailing newline does not produce an extra indented blank
// line.
func Indent(s string, level int, style IndentStyle) string {
	if level <= 0 || s == "" {
		return s
	}
	unit := strings.Repeat(" ", IndentWidth)
	if style == Tabs {
		unit = "\t"
	}
	prefix := strings.Repeat(unit, level)
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Separator returns a horizontal rule of width dashes. Width zero or
// below uses DefaultSeparatorWidth.
func Separator(width int) string {
	if width <= 0 {
		width = DefaultSeparatorWidth
	}
	return strings.Repeat("-", width)
}
