package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eslsoft/hskdeck/internal/usecase"
)

// autoAdvanceMsg fires after a correct answer unless the user moved on first.
type autoAdvanceMsg struct{ seq int }

// QuizModel is the multiple-choice quiz screen.
type QuizModel struct {
	ctx     context.Context
	session *usecase.QuizSession
	delay   time.Duration
	cursor  int
	task    *usecase.DelayedTask
	seq     int
	err     error
}

// NewQuizModel shows session. A zero delay disables auto-advance after correct answers.
func NewQuizModel(ctx context.Context, session *usecase.QuizSession, delay time.Duration) *QuizModel {
	return &QuizModel{ctx: ctx, session: session, delay: delay}
}

func (m *QuizModel) Init() tea.Cmd { return nil }

func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if msg.seq != m.seq || m.task == nil {
			return m, nil
		}
		m.task = nil
		m.advance()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q", "esc":
			m.cancelAutoAdvance()
			return m, tea.Quit
		}

		if m.session.Completed() {
			if key == "r" {
				m.session.Restart(m.ctx)
				m.cursor = 0
				m.err = nil
			}
			return m, nil
		}

		if _, answered := m.session.LastAnswer(); answered {
			switch key {
			case "enter", "n", "right", " ":
				m.cancelAutoAdvance()
				m.advance()
			}
			return m, nil
		}

		options := m.session.Options()
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(options)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.answer(options[m.cursor])
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(options) {
				m.cursor = n - 1
				return m, m.answer(options[n-1])
			}
		}
	}
	return m, nil
}

func (m *QuizModel) answer(choice string) tea.Cmd {
	res, err := m.session.Answer(m.ctx, choice)
	if err != nil {
		m.err = err
		return nil
	}
	if !res.Correct || m.delay <= 0 {
		return nil
	}
	m.seq++
	seq := m.seq
	task := usecase.Schedule(m.delay, nil)
	m.task = task
	return func() tea.Msg {
		if task.Wait() {
			return autoAdvanceMsg{seq: seq}
		}
		return nil
	}
}

func (m *QuizModel) advance() {
	if err := m.session.Next(m.ctx); err != nil {
		m.err = err
		return
	}
	m.cursor = 0
	m.err = nil
}

func (m *QuizModel) cancelAutoAdvance() {
	m.task.Cancel()
	m.task = nil
}

func (m *QuizModel) View() string {
	var b strings.Builder
	s := m.session
	b.WriteString(styleHeader.Render(fmt.Sprintf("HSK %d quiz", s.Level())))
	b.WriteString(styleSubtle.Render(fmt.Sprintf("  score %d", s.Score())))
	b.WriteRune('\n')
	stats := s.Stats()
	b.WriteString(styleSubtle.Render(fmt.Sprintf("new %d · familiar %d · known %d · mastered %d",
		stats.New, stats.Familiar, stats.Known, stats.Mastered)))
	b.WriteString("\n\n")

	if s.Completed() {
		b.WriteString(styleCorrect.Render(fmt.Sprintf("Quiz complete! Score %d/%d", s.Score(), s.Total())))
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render("Press r to restart or q to quit."))
		return b.String()
	}

	word, _ := s.Current()
	b.WriteString(styleSubtle.Render(fmt.Sprintf("Word %d/%d", s.Index()+1, s.Total())))
	b.WriteRune('\n')
	b.WriteString(styleHanzi.Render(word.Hanzi))
	b.WriteRune('\n')
	b.WriteString(styleSubtle.Render(word.Pinyin))
	b.WriteString("\n\n")

	last, answered := s.LastAnswer()
	for i, option := range s.Options() {
		line := fmt.Sprintf("%d. %s", i+1, option)
		switch {
		case answered && option == last.Expected:
			line = styleCorrect.Render(line)
		case answered:
			line = styleSubtle.Render(line)
		case i == m.cursor:
			line = styleCursor.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteRune('\n')
	}
	b.WriteRune('\n')

	if answered {
		if last.Correct {
			b.WriteString(styleCorrect.Render("Correct!"))
		} else {
			b.WriteString(styleIncorrect.Render("Not quite. The answer is " + last.Expected))
		}
		b.WriteString(styleSubtle.Render(fmt.Sprintf("  mastery %s → %s", last.Change.Previous, last.Change.Next)))
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render("Press Enter for the next word."))
	} else {
		b.WriteString(styleSubtle.Render("Choose with ↑/↓ and Enter, or press 1-9. q quits."))
	}
	if m.err != nil {
		b.WriteString(styleError.Render("Error: " + m.err.Error()))
	}
	return b.String()
}
