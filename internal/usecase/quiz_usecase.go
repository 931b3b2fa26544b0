package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// QuizUsecase starts resumable multiple-choice quizzes over one HSK level.
type QuizUsecase interface {
	Start(ctx context.Context, level int) (*QuizSession, error)
	ResetProgress(ctx context.Context, level int)
}

func NewQuizUsecase(
	catalog repository.Catalog,
	mastery MasteryUsecase,
	stats StatsUsecase,
	progress repository.QuizProgressRepository,
	optionCount int,
) QuizUsecase {
	return &quizUsecase{
		catalog:     catalog,
		mastery:     mastery,
		stats:       stats,
		progress:    progress,
		optionCount: max(optionCount, 2),
	}
}

type quizUsecase struct {
	catalog     repository.Catalog
	mastery     MasteryUsecase
	stats       StatsUsecase
	progress    repository.QuizProgressRepository
	optionCount int
}

func (u *quizUsecase) Start(ctx context.Context, level int) (*QuizSession, error) {
	if !entity.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidLevel, level)
	}
	words := u.catalog.ByLevel(level)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %d", entity.ErrEmptyLevel, level)
	}

	s := &QuizSession{uc: u, level: level, words: words}
	// A saved cursor resumes with its stats snapshot; otherwise stats come from mastery.
	if saved, ok := u.progress.Load(ctx)[level]; ok && saved.CurrentIndex >= 0 && saved.CurrentIndex < len(words) {
		s.index = saved.CurrentIndex
		s.stats = saved.Stats
	} else {
		s.refreshStats(ctx)
	}
	s.prepareQuestion()
	return s, nil
}

func (u *quizUsecase) ResetProgress(ctx context.Context, level int) {
	u.progress.Reset(ctx, level)
}

// QuizAnswer is the outcome of answering the current question.
type QuizAnswer struct {
	Correct  bool
	Expected string
	Change   MasteryChange
}

// QuizSession walks a level's words in catalog order. It is not safe for concurrent use.
type QuizSession struct {
	uc       *quizUsecase
	level    int
	words    []entity.VocabEntry
	index    int
	score    int
	stats    entity.LevelStats
	options  []string
	answer   *QuizAnswer
	complete bool
}

func (s *QuizSession) Level() int               { return s.level }
func (s *QuizSession) Index() int               { return s.index }
func (s *QuizSession) Total() int               { return len(s.words) }
func (s *QuizSession) Score() int               { return s.score }
func (s *QuizSession) Stats() entity.LevelStats { return s.stats }
func (s *QuizSession) Completed() bool          { return s.complete }

// Current returns the word being asked; ok is false once the session is completed.
func (s *QuizSession) Current() (entity.VocabEntry, bool) {
	if s.complete {
		return entity.VocabEntry{}, false
	}
	return s.words[s.index], true
}

// Options returns the shuffled choices for the current word.
func (s *QuizSession) Options() []string {
	return append([]string(nil), s.options...)
}

// LastAnswer returns the result for the current word if it was already answered.
func (s *QuizSession) LastAnswer() (QuizAnswer, bool) {
	if s.answer == nil {
		return QuizAnswer{}, false
	}
	return *s.answer, true
}

// Answer grades choice against the current word, applies the reset-on-miss policy and
// persists the cursor.
func (s *QuizSession) Answer(ctx context.Context, choice string) (QuizAnswer, error) {
	if s.complete {
		return QuizAnswer{}, entity.ErrSessionCompleted
	}
	if s.answer != nil {
		return QuizAnswer{}, entity.ErrAlreadyAnswered
	}

	word := s.words[s.index]
	correct := word.HasTranslation(choice)
	change, err := s.uc.mastery.UpdateByOutcome(ctx, word.ID, correct, entity.PolicyResetOnMiss)
	if err != nil {
		return QuizAnswer{}, err
	}
	if correct {
		s.score++
	}
	s.answer = &QuizAnswer{Correct: correct, Expected: word.PrimaryTranslation(), Change: change}
	s.refreshStats(ctx)
	s.save(ctx)
	return *s.answer, nil
}

// Next moves past an answered question. Past the last word the session completes.
func (s *QuizSession) Next(ctx context.Context) error {
	if s.complete {
		return entity.ErrSessionCompleted
	}
	if s.answer == nil {
		return entity.ErrNotAnswered
	}
	s.index++
	s.answer = nil
	s.save(ctx)
	if s.index >= len(s.words) {
		s.complete = true
		s.options = nil
		return nil
	}
	s.prepareQuestion()
	return nil
}

// Restart clears saved progress and begins again from the first word.
func (s *QuizSession) Restart(ctx context.Context) {
	s.uc.progress.Reset(ctx, s.level)
	s.index = 0
	s.score = 0
	s.answer = nil
	s.complete = false
	s.refreshStats(ctx)
	s.prepareQuestion()
}

func (s *QuizSession) refreshStats(ctx context.Context) {
	s.stats = s.uc.stats.ComputeLevelStats(ctx, s.level, len(s.words))
}

func (s *QuizSession) save(ctx context.Context) {
	s.uc.progress.Save(ctx, s.level, entity.QuizProgress{
		Level:        s.level,
		CurrentIndex: s.index,
		TotalWords:   len(s.words),
		Stats:        s.stats,
	})
}

func (s *QuizSession) prepareQuestion() {
	s.options = buildQuizOptions(s.words, s.words[s.index], s.uc.optionCount)
}

// buildQuizOptions returns the primary translation of word plus up to count-1 distinct
// distractors taken from other words, in random order.
func buildQuizOptions(words []entity.VocabEntry, word entity.VocabEntry, count int) []string {
	answer := word.PrimaryTranslation()
	options := []string{answer}
	seen := map[string]struct{}{answer: {}}

	candidates := lo.Shuffle(lo.Filter(words, func(w entity.VocabEntry, _ int) bool {
		return w.ID != word.ID && !w.HasTranslation(answer)
	}))
	for _, w := range candidates {
		if len(options) >= count {
			break
		}
		text := w.PrimaryTranslation()
		if _, dup := seen[text]; dup || text == "" || word.HasTranslation(text) {
			continue
		}
		seen[text] = struct{}{}
		options = append(options, text)
	}
	return lo.Shuffle(options)
}
