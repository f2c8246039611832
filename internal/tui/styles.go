package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuipractice/internal/model"
	"github.com/verte-zerg/tuipractice/internal/render"
)

type styles struct {
	typed    lipgloss.Style
	mistyped lipgloss.Style
	current  lipgloss.Style
	untyped  lipgloss.Style
	plain    lipgloss.Style
	footer   lipgloss.Style
	done     lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	return styles{
		typed: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Typed)),
		mistyped: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.MistypedFg)).
			Background(lipgloss.Color(theme.MistypedBg)).
			Bold(true),
		current: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.CurrentFg)).
			Background(lipgloss.Color(theme.CurrentBg)).
			Bold(true),
		untyped: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Untyped)),
		plain:   lipgloss.NewStyle(),
		footer:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Footer)),
		done:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.CurrentBg)).Bold(true),
	}
}

func (s styles) forTag(tag render.StyleTag) lipgloss.Style {
	switch tag {
	case render.Typed:
		return s.typed
	case render.Mistyped:
		return s.mistyped
	case render.Current:
		return s.current
	case render.Untyped:
		return s.untyped
	default:
		return s.plain
	}
}
