// Package render turns a typing snapshot into styled display lines.
package render

import (
	"strings"

	"github.com/verte-zerg/tuipractice/internal/typing"
)

// StyleTag identifies how a segment should be painted.
type StyleTag int

const (
	// Plain is used for text the display surface adds itself.
	Plain StyleTag = iota
	Typed
	Mistyped
	Current
	Untyped
)

func (t StyleTag) String() string {
	switch t {
	case Typed:
		return "typed"
	case Mistyped:
		return "mistyped"
	case Current:
		return "current"
	case Untyped:
		return "untyped"
	default:
		return "plain"
	}
}

// Segment is a run of text sharing one style. Break marks a highlighted line
// feed: Text is empty and the segment terminates its line.
type Segment struct {
	Text  string
	Style StyleTag
	Break bool
}

// Line is one display row before wrapping.
type Line []Segment

const lineFeed = "\n"

// Lines splits the snapshot into display lines so that line feeds in the
// reference start new lines instead of being drawn as glyphs.
func Lines(s typing.Snapshot) []Line {
	typedLines := strings.Split(s.Typed, lineFeed)
	untypedLines := strings.Split(s.Untyped, lineFeed)
	tail := typedLines[len(typedLines)-1]
	head := untypedLines[0]

	out := make([]Line, 0, len(typedLines)+len(untypedLines))
	for _, text := range typedLines[:len(typedLines)-1] {
		out = append(out, line(segment(text, Typed)))
	}

	left := line(segment(tail, Typed), segment(s.Mistyped, Mistyped), segment(s.Current, Current))
	if s.Mistyped == lineFeed || s.Current == lineFeed {
		out = append(out, left, line(segment(head, Untyped)))
	} else {
		out = append(out, append(left, segment(head, Untyped)...))
	}

	for _, text := range untypedLines[1:] {
		out = append(out, line(segment(text, Untyped)))
	}
	return out
}

// segment returns zero or one segments; empty text is dropped.
func segment(text string, style StyleTag) []Segment {
	switch text {
	case "":
		return nil
	case lineFeed:
		return []Segment{{Style: style, Break: true}}
	default:
		return []Segment{{Text: text, Style: style}}
	}
}

func line(parts ...[]Segment) Line {
	var l Line
	for _, p := range parts {
		l = append(l, p...)
	}
	return l
}
