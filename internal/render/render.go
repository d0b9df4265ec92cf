// Package render builds the indented lines emitted by the trace engine.
// All output shares one fixed indent unit; the current nesting depth
// decides how many units prefix a line.
package render

import "strings"

// Unit is the indent string repeated once per nesting level
const Unit = "    "

// Indent returns the indentation for the given depth
func Indent(depth int) string {
	return strings.Repeat(Unit, depth)
}

// Line renders a free-form message line: <indent>[<location>] <text>
func Line(depth int, location, text string) string {
	return Indent(depth) + "[" + location + "] " + text
}

// OpenLine renders a group opening line: <indent><label> {
func OpenLine(depth int, label string) string {
	return Indent(depth) + label + " {"
}

// CloseLine renders a group closing line: <indent>}
func CloseLine(depth int) string {
	return Indent(depth) + "}"
}

// Block re-indents a possibly multi-line value representation. The first
// line is returned as-is (it attaches to a prefix that already carries
// the indent); every following line gets the depth's indent prepended.
// One trailing newline is trimmed so the sink's own line terminator does
// not produce a blank line. The number of lines is preserved.
func Block(repr string, depth int) string {
	repr = strings.TrimSuffix(repr, "\n")
	lines := strings.Split(repr, "\n")
	if len(lines) == 1 {
		return repr
	}
	indent := Indent(depth)
	var b strings.Builder
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// DumpLine renders a value dump: <indent>[<location>] <name> = <block>
func DumpLine(depth int, location, name, repr string) string {
	return Indent(depth) + "[" + location + "] " + name + " = " + Block(repr, depth)
}
