package usecase

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// PracticeSettings sizes the practice modes.
type PracticeSettings struct {
	MatchingPairs int
	// WritingBatchSize caps words per writing session; zero means the whole level.
	WritingBatchSize int
}

// PracticeUsecase builds flashcard decks, matching games and writing sessions for a level.
type PracticeUsecase interface {
	Flashcards(level int) (*FlashcardDeck, error)
	Matching(level int) (*MatchingGame, error)
	Writing(level int) (*WritingSession, error)
}

func NewPracticeUsecase(catalog repository.Catalog, mastery MasteryUsecase, settings PracticeSettings) PracticeUsecase {
	if settings.MatchingPairs < 1 {
		settings.MatchingPairs = 4
	}
	return &practiceUsecase{catalog: catalog, mastery: mastery, settings: settings}
}

type practiceUsecase struct {
	catalog  repository.Catalog
	mastery  MasteryUsecase
	settings PracticeSettings
}

func (u *practiceUsecase) Flashcards(level int) (*FlashcardDeck, error) {
	words, err := u.levelWords(level)
	if err != nil {
		return nil, err
	}
	return NewFlashcardDeck(lo.Shuffle(words)), nil
}

func (u *practiceUsecase) Matching(level int) (*MatchingGame, error) {
	words, err := u.levelWords(level)
	if err != nil {
		return nil, err
	}
	if len(words) < u.settings.MatchingPairs {
		return nil, fmt.Errorf("%w: level %d has %d, need %d", entity.ErrNotEnoughWords, level, len(words), u.settings.MatchingPairs)
	}
	return NewMatchingGame(lo.Shuffle(words)[:u.settings.MatchingPairs]), nil
}

func (u *practiceUsecase) Writing(level int) (*WritingSession, error) {
	words, err := u.levelWords(level)
	if err != nil {
		return nil, err
	}
	words = lo.Shuffle(words)
	if n := u.settings.WritingBatchSize; n > 0 && n < len(words) {
		words = words[:n]
	}
	return newWritingSession(u.mastery, words), nil
}

// levelWords returns a fresh copy of the level's words, safe to shuffle.
func (u *practiceUsecase) levelWords(level int) ([]entity.VocabEntry, error) {
	if !entity.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidLevel, level)
	}
	words := u.catalog.ByLevel(level)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %d", entity.ErrEmptyLevel, level)
	}
	return append([]entity.VocabEntry(nil), words...), nil
}
