package mermaid

import (
	"fmt"
	"strings"
)

// SectionIndent is the number of spaces diagram items are indented below
// their diagram's header line.
const SectionIndent = 4

// Indent prefixes every line of text with size spaces.
//
// The line count and line contents are preserved exactly: no line is added
// or removed, no trailing newline is appended, and empty lines are padded
// like any other line.
func Indent(text string, size int) string {
	pad := strings.Repeat(" ", size)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// WriteSection appends a titled, banner-delimited section to sb.
//
// The section opens with a "%% <title> start" comment banner, renders each
// item on its own line (multi-line items keep their internal structure),
// and closes with a "%% <title> end" banner. Every emitted line, banners
// included, is indented by SectionIndent spaces. Nothing is written when
// items is empty, so an empty collection leaves the output untouched.
//
// Both diagram types assemble their output through this helper so that the
// section framing can never drift apart between them.
func WriteSection[T fmt.Stringer](sb *strings.Builder, title string, items []T) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(Indent("%% "+title+" start", SectionIndent))
	for _, item := range items {
		sb.WriteString("\n")
		sb.WriteString(Indent(item.String(), SectionIndent))
	}
	sb.WriteString("\n")
	sb.WriteString(Indent("%% "+title+" end", SectionIndent))
}
