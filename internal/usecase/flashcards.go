package usecase

import "github.com/eslsoft/hskdeck/internal/entity"

// FlashcardDeck cycles through cards; the back shows pinyin, translations and examples.
type FlashcardDeck struct {
	cards   []entity.VocabEntry
	index   int
	flipped bool
}

// NewFlashcardDeck keeps the given order. cards must not be empty.
func NewFlashcardDeck(cards []entity.VocabEntry) *FlashcardDeck {
	return &FlashcardDeck{cards: cards}
}

func (d *FlashcardDeck) Current() entity.VocabEntry { return d.cards[d.index] }
func (d *FlashcardDeck) Flipped() bool              { return d.flipped }
func (d *FlashcardDeck) Len() int                   { return len(d.cards) }

// Position is the 1-based index of the current card.
func (d *FlashcardDeck) Position() int { return d.index + 1 }

func (d *FlashcardDeck) Flip() { d.flipped = !d.flipped }

// Next shows the front of the following card, wrapping to the first.
func (d *FlashcardDeck) Next() {
	d.index = (d.index + 1) % len(d.cards)
	d.flipped = false
}

// Prev shows the front of the preceding card, wrapping to the last.
func (d *FlashcardDeck) Prev() {
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	d.flipped = false
}
