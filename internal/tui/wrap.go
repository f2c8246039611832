// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuipractice/internal/render"
)

const (
	breakGlyph      = "↵"
	wrongSpaceGlyph = "•"
	tabWidth        = 4
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	cursor  bool
}

// styleLine paints one display line. Line feeds that reach this point (a
// highlighted break, or one buried in a longer mistyped trail) are drawn as a
// glyph so the row is never split by the terminal.
func styleLine(line render.Line, st styles) []styledRune {
	out := make([]styledRune, 0, len(line))
	for _, seg := range line {
		style := st.forTag(seg.Style)
		cursor := seg.Style == render.Current
		if seg.Break {
			out = append(out, styledRune{
				s:      style.Render(breakGlyph),
				width:  runewidth.StringWidth(breakGlyph),
				cursor: cursor,
			})
			continue
		}
		for _, r := range seg.Text {
			item := styledRune{cursor: cursor}
			switch {
			case r == '\n':
				item.s = style.Render(breakGlyph)
				item.width = runewidth.StringWidth(breakGlyph)
			case r == '\t':
				item.s = style.Render(strings.Repeat(" ", tabWidth))
				item.width = tabWidth
				item.isSpace = true
			case r == ' ' && seg.Style == render.Mistyped:
				item.s = style.Render(wrongSpaceGlyph)
				item.width = runewidth.StringWidth(wrongSpaceGlyph)
			default:
				item.s = style.Render(string(r))
				item.width = runewidth.RuneWidth(r)
				item.isSpace = r == ' '
			}
			out = append(out, item)
			cursor = false
		}
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapRow splits a styled line into rows no wider than width, breaking after
// the last space when possible. The space stays at the end of its row so a
// cursor resting on it remains visible.
func wrapRow(runes []styledRune, width int) [][]styledRune {
	if width <= 0 || len(runes) == 0 {
		return [][]styledRune{runes}
	}
	var rows [][]styledRune
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 && lastSpaceIdx < len(line)-1 {
				rows = append(rows, append([]styledRune(nil), line[:lastSpaceIdx+1]...))
				line = append([]styledRune(nil), line[lastSpaceIdx+1:]...)
			} else {
				rows = append(rows, line)
				line = nil
			}
			lineWidth = lineWidthOf(line)
			lastSpaceIdx = lastSpaceIndex(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(rows, line)
}

// layoutLines paints and wraps every display line, returning the rendered
// rows and the index of the row holding the cursor (-1 when complete).
func layoutLines(lines []render.Line, st styles, width int) ([]string, int) {
	rows := make([]string, 0, len(lines))
	cursorRow := -1
	for _, line := range lines {
		for _, row := range wrapRow(styleLine(line, st), width) {
			if cursorRow < 0 && hasCursor(row) {
				cursorRow = len(rows)
			}
			rows = append(rows, renderStyledRunes(row))
		}
	}
	return rows, cursorRow
}

func hasCursor(row []styledRune) bool {
	for _, item := range row {
		if item.cursor {
			return true
		}
	}
	return false
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
