package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eslsoft/hskdeck/internal/usecase"
)

// WritingModel asks for the hanzi of each prompted word.
type WritingModel struct {
	ctx      context.Context
	level    int
	session  *usecase.WritingSession
	input    textinput.Model
	feedback usecase.WritingFeedback
	typed    bool
	err      error
}

func NewWritingModel(ctx context.Context, level int, session *usecase.WritingSession) *WritingModel {
	ti := textinput.New()
	ti.Placeholder = "Type the characters and press Enter..."
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 30
	ti.Prompt = "> "
	return &WritingModel{ctx: ctx, level: level, session: session, input: ti}
}

func (m *WritingModel) Init() tea.Cmd { return textinput.Blink }

func (m *WritingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab:
			if _, graded := m.session.Result(); !graded && !m.session.Completed() {
				_, m.err = m.session.Skip(m.ctx)
				m.input.SetValue("")
			}
			return m, nil

		case tea.KeyEnter:
			if m.session.Completed() {
				return m, tea.Quit
			}
			if _, graded := m.session.Result(); graded {
				m.err = m.session.Next()
				m.typed = false
				m.input.SetValue("")
				return m, nil
			}
			m.feedback, m.err = m.session.Submit(m.ctx, strings.TrimSpace(m.input.Value()))
			m.typed = true
			m.input.SetValue("")
			return m, nil
		}
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WritingModel) View() string {
	var b strings.Builder
	s := m.session
	b.WriteString(styleHeader.Render(fmt.Sprintf("HSK %d writing", m.level)))
	b.WriteRune('\n')

	if s.Completed() {
		sum := s.Summary()
		b.WriteString("\n")
		b.WriteString(styleCorrect.Render(fmt.Sprintf("Done! %d/%d correct, accuracy %d%%", sum.Correct, sum.Total, sum.Accuracy())))
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render("Press Enter or Esc to quit."))
		return b.String()
	}

	word, _ := s.Current()
	b.WriteString(styleSubtle.Render(fmt.Sprintf("Word %d/%d", s.Index()+1, s.Total())))
	b.WriteString("\n\n")
	b.WriteString(stylePartial.Render(word.PrimaryTranslation()))
	b.WriteString("  ")
	b.WriteString(styleSubtle.Render(word.Pinyin))
	b.WriteString("\n\n")

	chars, written := s.Characters()
	cells := make([]string, len(chars))
	for i, ch := range chars {
		if i < written {
			cells[i] = styleCorrect.Render(ch)
		} else {
			cells[i] = styleSubtle.Render("＿")
		}
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n\n")

	if res, graded := s.Result(); graded {
		switch {
		case res.Correct:
			b.WriteString(styleCorrect.Render("Correct!"))
		default:
			b.WriteString(styleIncorrect.Render("Skipped. The word is " + word.Hanzi))
		}
		b.WriteString(styleSubtle.Render(fmt.Sprintf("  mastery %s → %s", res.Change.Previous, res.Change.Next)))
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render("Press Enter for the next word."))
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.typed && m.feedback == usecase.WritingMistake {
			b.WriteString(styleIncorrect.Render("Not that character, try again."))
			b.WriteString("\n")
		}
		b.WriteString(styleSubtle.Render("Enter checks, Tab skips, Esc quits."))
	}
	if m.err != nil {
		b.WriteString(styleError.Render("Error: " + m.err.Error()))
	}
	return b.String()
}
