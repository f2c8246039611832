// Package typing tracks progress through a reference text keystroke by keystroke.
package typing

import "errors"

// ErrEmptyInput is returned when a session is started without any text to type.
var ErrEmptyInput = errors.New("reference text is empty")

// Snapshot is a read-only copy of the typing partition at one point in time.
// Current is empty only once the session is complete.
type Snapshot struct {
	Typed    string
	Mistyped string
	Current  string
	Untyped  string
}

// Progress partitions a reference text into typed, current and untyped runes,
// plus the wrong keystrokes entered since the last correct one.
type Progress struct {
	reference []rune
	pos       int
	mistyped  []rune
}

// New starts a session for the given reference text.
func New(reference string) (*Progress, error) {
	if reference == "" {
		return nil, ErrEmptyInput
	}
	return &Progress{reference: []rune(reference)}, nil
}

// Advance feeds a single keystroke. A key matching the current rune moves the
// position forward and clears the mistyped trail; any other key is appended to it.
// Keystrokes after completion are ignored.
func (p *Progress) Advance(key rune) {
	if p.IsComplete() {
		return
	}
	if key != p.reference[p.pos] {
		p.mistyped = append(p.mistyped, key)
		return
	}
	p.pos++
	p.mistyped = p.mistyped[:0]
}

// IsComplete reports whether every rune of the reference has been typed.
func (p *Progress) IsComplete() bool {
	return p.pos >= len(p.reference)
}

// Reference returns the full text being practiced.
func (p *Progress) Reference() string {
	return string(p.reference)
}

// Typed returns the confirmed prefix of the reference.
func (p *Progress) Typed() string {
	return string(p.reference[:p.pos])
}

// Mistyped returns the wrong keystrokes for the current position.
func (p *Progress) Mistyped() string {
	return string(p.mistyped)
}

// Current returns the next expected rune, or false once complete.
func (p *Progress) Current() (rune, bool) {
	if p.IsComplete() {
		return 0, false
	}
	return p.reference[p.pos], true
}

// Untyped returns the part of the reference after the current rune.
func (p *Progress) Untyped() string {
	if p.IsComplete() {
		return ""
	}
	return string(p.reference[p.pos+1:])
}

// Position returns how many runes have been typed and the reference length in runes.
func (p *Progress) Position() (int, int) {
	return p.pos, len(p.reference)
}

// Snapshot copies the current partition.
func (p *Progress) Snapshot() Snapshot {
	s := Snapshot{
		Typed:    p.Typed(),
		Mistyped: p.Mistyped(),
		Untyped:  p.Untyped(),
	}
	if r, ok := p.Current(); ok {
		s.Current = string(r)
	}
	return s
}
