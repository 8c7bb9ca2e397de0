package brace

import "github.com/brace-format/brace/debug"

// Compile parses a template into its segment tree. It is total: text
// that does not form a balanced placeholder group stays literal, and
// a brace behind a backslash is never a delimiter.
func Compile(template string) Segments {
	segs := compile(template)
	if debug.Compile() {
		debug.Logf("compile %q -> %d top-level segments\n", template, len(segs))
	}
	return segs
}

func compile(s string) Segments {
	var segs Segments
	lit := 0
	i := 0
	for i < len(s) {
		if s[i] != '{' || escapedAt(s, i) {
			i++
			continue
		}
		end := matchBrace(s, i)
		if end < 0 {
			// no balanced group starts here
			i++
			continue
		}
		if i > lit {
			segs = append(segs, &Segment{Type: LiteralSegment, Text: s[lit:i]})
		}
		segs = append(segs, &Segment{
			Type:     PlaceholderSegment,
			Children: compile(s[i+1 : end]),
		})
		i = end + 1
		lit = i
	}
	if lit < len(s) {
		segs = append(segs, &Segment{Type: LiteralSegment, Text: s[lit:]})
	}
	return segs
}

// matchBrace returns the index of the unescaped '}' closing the
// unescaped '{' at open, or -1 when the group never balances.
func matchBrace(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		if escapedAt(s, j) {
			continue
		}
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// escapedAt reports whether the byte at i sits directly behind a
// backslash. The backslash only suppresses the delimiter; it stays in
// the literal text.
func escapedAt(s string, i int) bool {
	return i > 0 && s[i-1] == '\\'
}
