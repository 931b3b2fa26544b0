// Package tui holds the terminal screens for practicing HSK vocabulary.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	stylePartial   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // Yellow
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeader    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	styleCursor    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleHanzi     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(1, 2)
	styleSelected  = lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("0"))
	styleMatched   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	styleTile      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(18)
	styleBarFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBarEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Run drives model until the user quits.
func Run(model tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}
