// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wpmtest/internal/session"
)

const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

// Model implements the Bubble Tea typing UI around one session.
type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	title   string

	width  int
	height int
}

// NewModel constructs a typing TUI model.
func NewModel(s *session.Session, title string) *Model {
	return &Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		title:   title,
	}
}

// Session exposes the underlying session once the program has exited.
func (m *Model) Session() *session.Session {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.session.Phase().Done() {
		return tea.Quit
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		// Keeps the live WPM in the footer moving between key presses.
		if m.session.Phase().Done() {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		for _, k := range m.keys.translateKey(msg) {
			m.session.Apply(k)
		}
		if m.session.Phase().Done() {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.Phase().Done() {
		return ""
	}
	segments := buildSegments(m.session.View())
	if m.width == 0 || m.height == 0 {
		return renderSegments(segments)
	}
	contentWidth := max(int(float64(m.width)*0.70), 1)
	text := wrapSegments(segments, contentWidth)
	box := textBoxStyle.Width(contentWidth + 2).Render(text)
	content := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(m.title), box)

	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	typed := len(m.session.Typed())
	total := len(m.session.Target())
	segments := []string{
		fmt.Sprintf("%d/%d words (%d%%)", typed, total, int(m.session.Progress()*100)),
		fmt.Sprintf("%.1f WPM", m.session.LiveWPM()),
	}
	footer := footerStyle.Render(strings.Join(segments, "  ·  "))
	return footer + "  " + m.help.View(m.keys)
}
