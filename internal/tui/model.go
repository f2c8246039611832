// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuipractice/internal/model"
	"github.com/verte-zerg/tuipractice/internal/render"
	"github.com/verte-zerg/tuipractice/internal/typing"
)

const doneMessage = "Practice complete. Press ctrl+c to exit."

// Model implements the Bubble Tea typing UI.
type Model struct {
	config   model.Config
	progress *typing.Progress
	styles   styles
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	width  int
	height int
}

// NewModel constructs a typing TUI model around an existing session.
func NewModel(cfg model.Config, progress *typing.Progress) *Model {
	m := &Model{
		config:   cfg,
		progress: progress,
		styles:   newStyles(cfg.Theme),
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncViewport()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.progress.IsComplete() {
			return m, nil
		}
		for _, r := range m.keyRunes(msg) {
			m.progress.Advance(r)
		}
		if m.progress.IsComplete() && m.config.ExitOnComplete {
			return m, tea.Quit
		}
		m.syncViewport()
		return m, nil
	default:
		return m, nil
	}
}

// keyRunes decodes a key press into the characters it types. Keys that do not
// produce text are dropped.
func (m *Model) keyRunes(msg tea.KeyMsg) []rune {
	switch {
	case key.Matches(msg, m.keys.Newline):
		return []rune{'\n'}
	case key.Matches(msg, m.keys.Tab):
		return []rune{'\t'}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		runes := make([]rune, 0, len(msg.Runes))
		for i, r := range msg.Runes {
			if r == '\r' {
				if i+1 < len(msg.Runes) && msg.Runes[i+1] == '\n' {
					continue
				}
				r = '\n'
			}
			runes = append(runes, r)
		}
		return runes
	default:
		return nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		rows, _ := m.layout(0)
		return strings.Join(rows, "\n")
	}
	content := m.viewport.View()
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * m.config.WidthPct)
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) layout(width int) ([]string, int) {
	return layoutLines(render.Lines(m.progress.Snapshot()), m.styles, width)
}

// syncViewport re-renders the text into the viewport and scrolls so the
// cursor row stays visible.
func (m *Model) syncViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	width := m.contentWidth()
	rows, cursorRow := m.layout(width)
	if m.progress.IsComplete() {
		rows = append(rows, "", m.styles.done.Render(doneMessage))
		cursorRow = len(rows) - 1
	}

	maxHeight := m.height
	if m.height >= 3 {
		maxHeight = m.height - 1
	}
	height := len(rows)
	if height > maxHeight {
		height = maxHeight
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(strings.Join(rows, "\n"))

	if cursorRow < 0 {
		return
	}
	switch {
	case cursorRow < m.viewport.YOffset:
		m.viewport.SetYOffset(cursorRow)
	case cursorRow >= m.viewport.YOffset+height:
		m.viewport.SetYOffset(cursorRow - height + 1)
	}
}

func (m *Model) renderFooter() string {
	typed, total := m.progress.Position()
	progress := 0
	if total > 0 {
		progress = int(float64(typed) / float64(total) * 100)
	}
	segments := []string{m.styles.footer.Render(fmt.Sprintf("Progress %d%%", progress))}
	if m.config.KeyHelp {
		segments = append(segments, m.help.View(m.keys))
	}
	return strings.Join(segments, "  ")
}

// RenderText renders a snapshot as wrapped, styled rows without a terminal
// program. A width <= 0 disables wrapping.
func RenderText(snap typing.Snapshot, theme model.Theme, width int) string {
	rows, _ := layoutLines(render.Lines(snap), newStyles(theme), width)
	return strings.Join(rows, "\n")
}
