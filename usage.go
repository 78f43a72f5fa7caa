package cliopts

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Usage returns the usage text for opts: the preamble, when one is set,
// followed by a blank line and the aligned options block. The text carries
// no trailing newline; callers add one when printing.
func Usage(opts Options) string {
	body := Render(Flags(opts))
	if opts.Preamble == "" {
		return body
	}
	return opts.Preamble + "\n\n" + body
}

// Render lays out already-derived flag records as an "Options:" block. Every
// line indents two spaces, pads the flag label to the widest label in the
// block, and separates label from description with two more spaces. The
// separator is written even when a flag has nothing to say about itself, so
// the description column starts at the same byte offset on every line.
func Render(flags []Flag) string {
	labels := make([]string, len(flags))
	width := 0
	for i, f := range flags {
		labels[i] = label(f)
		if n := utf8.RuneCountInString(labels[i]); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("Options:")
	for i, f := range flags {
		b.WriteString("\n  ")
		b.WriteString(labels[i])
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(labels[i])))
		b.WriteString("  ")
		b.WriteString(describe(f))
	}
	return b.String()
}

// label builds the flag column: the canonical name and its aliases sorted
// together shortest first, each dashed by length, with the placeholder
// appended in angle brackets when the flag takes a value. The sort is stable
// on length alone, so equal-length names keep their declaration order and
// the canonical name precedes aliases of the same length.
func label(f Flag) string {
	names := make([]string, 0, len(f.Aliases)+1)
	names = append(names, f.Name)
	names = append(names, f.Aliases...)
	slices.SortStableFunc(names, func(a, b string) int {
		return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	})

	for i, n := range names {
		names[i] = dashed(n)
	}
	s := strings.Join(names, ", ")
	if f.Placeholder != "" {
		s += " <" + f.Placeholder + ">"
	}
	return s
}

// describe builds the description column. A default is appended to the
// description when both exist; a default on its own stands in for the
// missing description.
func describe(f Flag) string {
	if f.Default == nil {
		return f.Description
	}
	if f.Description == "" {
		return "Default: " + f.Default.Text
	}
	return f.Description + " (default: " + f.Default.Text + ")"
}

// dashed prefixes a name with one dash when it is a single byte and two
// otherwise. The byte rule matches shorthand registration in the tokenizer:
// a single-rune multi-byte name is a long flag, not a shorthand.
func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
