package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eslsoft/hskdeck/internal/entity"
)

const barWidth = 24

// RenderDashboard draws the overall summary followed by one bar per level.
func RenderDashboard(d entity.Dashboard) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("HSK progress"))
	b.WriteString("\n\n")
	b.WriteString(summaryLine("Overall", d.Overall))
	b.WriteString("\n\n")
	for _, level := range d.Levels {
		b.WriteString(summaryLine(fmt.Sprintf("HSK %d", level.Level), level))
		b.WriteRune('\n')
	}
	return b.String()
}

func summaryLine(label string, s entity.LevelSummary) string {
	counters := styleSubtle.Render(fmt.Sprintf("new %d · familiar %d · known %d · mastered %d",
		s.New, s.Familiar, s.Known, s.Mastered))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(9).Render(label),
		lipgloss.NewStyle().Width(11).Render(fmt.Sprintf("%d words", s.Total)),
		progressBar(s.Percentage()),
		fmt.Sprintf(" %3d%%  ", s.Percentage()),
		counters,
	)
}

func progressBar(percent int) string {
	filled := percent * barWidth / 100
	return styleBarFilled.Render(strings.Repeat("█", filled)) + styleBarEmpty.Render(strings.Repeat("░", barWidth-filled))
}
