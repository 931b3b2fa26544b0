package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eslsoft/hskdeck/internal/usecase"
)

// FlashcardModel flips through a shuffled deck.
type FlashcardModel struct {
	level int
	deck  *usecase.FlashcardDeck
}

func NewFlashcardModel(level int, deck *usecase.FlashcardDeck) *FlashcardModel {
	return &FlashcardModel{level: level, deck: deck}
}

func (m *FlashcardModel) Init() tea.Cmd { return nil }

func (m *FlashcardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ", "enter", "f":
			m.deck.Flip()
		case "right", "n", "l":
			m.deck.Next()
		case "left", "p", "h":
			m.deck.Prev()
		}
	}
	return m, nil
}

func (m *FlashcardModel) View() string {
	var b strings.Builder
	card := m.deck.Current()
	b.WriteString(styleHeader.Render(fmt.Sprintf("HSK %d flashcards", m.level)))
	b.WriteString(styleSubtle.Render(fmt.Sprintf("  %d/%d", m.deck.Position(), m.deck.Len())))
	b.WriteString("\n")
	b.WriteString(styleHanzi.Render(card.Hanzi))
	b.WriteString("\n")

	if m.deck.Flipped() {
		b.WriteString(stylePartial.Render(card.Pinyin))
		b.WriteString("\n")
		b.WriteString(strings.Join(card.Translations, "; "))
		b.WriteString("\n")
		for _, ex := range card.Examples {
			b.WriteString("\n")
			b.WriteString(ex.Chinese + "\n")
			b.WriteString(styleSubtle.Render(ex.Pinyin) + "\n")
			b.WriteString(ex.Vietnamese + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("Space flips, ←/→ move between cards, q quits."))
	return b.String()
}
