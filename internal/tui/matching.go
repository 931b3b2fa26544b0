package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eslsoft/hskdeck/internal/usecase"
)

const matchColumns = 4

// MatchingModel lays the tiles out in a grid and lets the user pair them up.
type MatchingModel struct {
	level    int
	practice usecase.PracticeUsecase
	game     *usecase.MatchingGame
	cursor   int
	last     usecase.MatchOutcome
	played   bool
	err      error
}

func NewMatchingModel(level int, practice usecase.PracticeUsecase) (*MatchingModel, error) {
	game, err := practice.Matching(level)
	if err != nil {
		return nil, err
	}
	return &MatchingModel{level: level, practice: practice, game: game}, nil
}

func (m *MatchingModel) Init() tea.Cmd { return nil }

func (m *MatchingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	total := len(m.game.Tiles())
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < total-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-matchColumns >= 0 {
			m.cursor -= matchColumns
		}
	case "down", "j":
		if m.cursor+matchColumns < total {
			m.cursor += matchColumns
		}
	case "enter", " ":
		if m.game.Completed() {
			return m, nil
		}
		m.last, m.err = m.game.Select(m.cursor)
		m.played = true
	case "r":
		if !m.game.Completed() {
			return m, nil
		}
		game, err := m.practice.Matching(m.level)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.game, m.cursor, m.played, m.err = game, 0, false, nil
	}
	return m, nil
}

func (m *MatchingModel) View() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("HSK %d matching", m.level)))
	b.WriteString(styleSubtle.Render(fmt.Sprintf("  mistakes %d", m.game.Mistakes())))
	b.WriteString("\n\n")

	selected, hasSelection := m.game.Selected()
	var rows []string
	var row []string
	for i, tile := range m.game.Tiles() {
		style := styleTile
		switch {
		case tile.Matched:
			style = style.Inherit(styleMatched)
		case hasSelection && i == selected:
			style = style.Inherit(styleSelected)
		}
		if i == m.cursor {
			style = style.BorderForeground(lipgloss.Color("14"))
		}
		row = append(row, style.Render(tile.Text))
		if len(row) == matchColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")

	switch {
	case m.game.Completed():
		b.WriteString(styleCorrect.Render("All pairs matched!"))
		b.WriteString(styleSubtle.Render("  Press r for a new board or q to quit."))
	case m.played && m.last == usecase.MatchMatched:
		b.WriteString(styleCorrect.Render("Match!"))
	case m.played && m.last == usecase.MatchMismatched:
		b.WriteString(styleIncorrect.Render("Those two don't belong together."))
	default:
		b.WriteString(styleSubtle.Render("Move with arrows, Enter picks a tile, q quits."))
	}
	if m.err != nil {
		b.WriteString(styleError.Render("Error: " + m.err.Error()))
	}
	return b.String()
}
