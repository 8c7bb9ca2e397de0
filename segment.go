// Package brace compiles {path.to.value} template strings into
// segment trees and resolves them against bindings.
package brace

import "strings"

// SegmentType discriminates compiled template segments.
type SegmentType int

const (
	LiteralSegment SegmentType = iota
	PlaceholderSegment
)

func (t SegmentType) String() string {
	switch t {
	case LiteralSegment:
		return "Literal"
	case PlaceholderSegment:
		return "Placeholder"
	}
	return "<unknown segment type>"
}

// Segment is one node of a compiled template: literal text, or a
// placeholder whose delimited contents are themselves compiled.
type Segment struct {
	Type     SegmentType
	Text     string
	Children Segments
}

// Segments is an ordered compiled template.
type Segments []*Segment

// String reconstructs the template text the segments were compiled
// from, delimiters included.
func (segs Segments) String() string {
	var sb strings.Builder
	segs.appendTo(&sb)
	return sb.String()
}

func (segs Segments) appendTo(sb *strings.Builder) {
	for _, seg := range segs {
		switch seg.Type {
		case LiteralSegment:
			sb.WriteString(seg.Text)
		case PlaceholderSegment:
			sb.WriteByte('{')
			seg.Children.appendTo(sb)
			sb.WriteByte('}')
		}
	}
}
