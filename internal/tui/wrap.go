package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wpmtest/internal/diff"
	"github.com/verte-zerg/wpmtest/internal/session"
)

// Colors follow the classic terminal palette: green, light red, red, blue.
var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	extraStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	missingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	activeStyle    = missingStyle.Underline(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	textBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), true).
			Padding(0, 1).
			Background(lipgloss.Color("236"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

func styleFor(class diff.Class, role diff.Role) lipgloss.Style {
	switch class {
	case diff.Correct:
		return correctStyle
	case diff.Incorrect:
		return incorrectStyle
	case diff.Extra:
		return extraStyle
	default:
		if role == diff.Active {
			return activeStyle
		}
		return missingStyle
	}
}

// styledSegment is one rendered run plus the layout facts wrapping needs.
type styledSegment struct {
	s       string
	width   int
	isSpace bool
}

func buildSegments(views []session.WordView) []styledSegment {
	out := make([]styledSegment, 0, len(views)*3)
	for i, v := range views {
		if i > 0 {
			out = append(out, styledSegment{s: " ", width: 1, isSpace: true})
		}
		for _, run := range v.Runs {
			out = append(out, styledSegment{
				s:     styleFor(run.Class, v.Role).Render(run.Text),
				width: runewidth.StringWidth(run.Text),
			})
		}
	}
	return out
}

func renderSegments(segments []styledSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.s)
	}
	return b.String()
}

// wrapSegments breaks lines at word spaces only. A word wider than the
// line overflows it.
func wrapSegments(segments []styledSegment, width int) string {
	if width <= 0 {
		return renderSegments(segments)
	}
	var lines []string
	var line []styledSegment
	lineWidth := 0
	wordStart := 0

	for _, seg := range segments {
		if seg.isSpace {
			line = append(line, seg)
			lineWidth += seg.width
			wordStart = len(line)
			continue
		}
		if lineWidth+seg.width > width && wordStart > 0 {
			lines = append(lines, renderSegments(line[:wordStart-1]))
			line = append([]styledSegment{}, line[wordStart:]...)
			lineWidth = widthOf(line)
			wordStart = 0
		}
		line = append(line, seg)
		lineWidth += seg.width
	}
	lines = append(lines, renderSegments(line))
	return strings.Join(lines, "\n")
}

func widthOf(segments []styledSegment) int {
	total := 0
	for _, seg := range segments {
		total += seg.width
	}
	return total
}
