package usecase

import (
	"context"
	"math"

	"github.com/eslsoft/hskdeck/internal/entity"
)

// WritingFeedback describes how a single stroke of input was received.
type WritingFeedback int

const (
	WritingAccepted WritingFeedback = iota
	WritingMistake
	WritingWordDone
)

// WritingResult is the graded outcome of one word.
type WritingResult struct {
	WordID   string
	Correct  bool
	Skipped  bool
	Mistakes int
	Change   MasteryChange
}

// WritingSummary totals a finished session.
type WritingSummary struct {
	Total   int
	Correct int
}

// Accuracy is the rounded percentage of correctly written words.
func (s WritingSummary) Accuracy() int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(s.Correct)/float64(s.Total) + 0.5))
}

// WritingSession asks the learner to write each word's distinct characters in order.
// Results follow the increment/decrement policy.
type WritingSession struct {
	mastery  MasteryUsecase
	words    []entity.VocabEntry
	index    int
	chars    []string
	done     int
	mistakes int
	result   *WritingResult
	summary  WritingSummary
}

func newWritingSession(mastery MasteryUsecase, words []entity.VocabEntry) *WritingSession {
	s := &WritingSession{mastery: mastery, words: words}
	s.prepare()
	return s
}

func (s *WritingSession) Index() int              { return s.index }
func (s *WritingSession) Total() int              { return len(s.words) }
func (s *WritingSession) Completed() bool         { return s.index >= len(s.words) }
func (s *WritingSession) Summary() WritingSummary { return s.summary }

// Current returns the word being written; ok is false once every word is done.
func (s *WritingSession) Current() (entity.VocabEntry, bool) {
	if s.Completed() {
		return entity.VocabEntry{}, false
	}
	return s.words[s.index], true
}

// Characters returns the distinct characters of the current word and how many are written.
func (s *WritingSession) Characters() (chars []string, written int) {
	return append([]string(nil), s.chars...), s.done
}

// Result returns the graded outcome of the current word once it has one.
func (s *WritingSession) Result() (WritingResult, bool) {
	if s.result == nil {
		return WritingResult{}, false
	}
	return *s.result, true
}

// WriteCharacter checks ch against the next expected character. Mistakes are only counted;
// finishing the last character grades the word as correct.
func (s *WritingSession) WriteCharacter(ctx context.Context, ch string) (WritingFeedback, error) {
	if err := s.writable(); err != nil {
		return WritingMistake, err
	}
	if s.done >= len(s.chars) || ch != s.chars[s.done] {
		s.mistakes++
		return WritingMistake, nil
	}
	s.done++
	if s.done < len(s.chars) {
		return WritingAccepted, nil
	}
	if err := s.grade(ctx, true, false); err != nil {
		return WritingMistake, err
	}
	return WritingWordDone, nil
}

// Submit feeds typed text through WriteCharacter, ignoring characters already written.
// It stops at the first mistake.
func (s *WritingSession) Submit(ctx context.Context, text string) (WritingFeedback, error) {
	if err := s.writable(); err != nil {
		return WritingMistake, err
	}
	written := make(map[string]struct{}, s.done)
	for _, c := range s.chars[:s.done] {
		written[c] = struct{}{}
	}
	feedback := WritingMistake
	for _, r := range text {
		ch := string(r)
		if _, ok := written[ch]; ok {
			continue
		}
		var err error
		feedback, err = s.WriteCharacter(ctx, ch)
		if err != nil || feedback != WritingAccepted {
			return feedback, err
		}
		written[ch] = struct{}{}
	}
	return feedback, nil
}

// Skip gives up on the current word, which counts as incorrect.
func (s *WritingSession) Skip(ctx context.Context) (WritingResult, error) {
	if err := s.writable(); err != nil {
		return WritingResult{}, err
	}
	if err := s.grade(ctx, false, true); err != nil {
		return WritingResult{}, err
	}
	return *s.result, nil
}

// Next moves on from a graded word.
func (s *WritingSession) Next() error {
	if s.Completed() {
		return entity.ErrSessionCompleted
	}
	if s.result == nil {
		return entity.ErrNotAnswered
	}
	s.index++
	s.prepare()
	return nil
}

func (s *WritingSession) writable() error {
	if s.Completed() {
		return entity.ErrSessionCompleted
	}
	if s.result != nil {
		return entity.ErrAlreadyAnswered
	}
	return nil
}

func (s *WritingSession) grade(ctx context.Context, correct, skipped bool) error {
	word := s.words[s.index]
	change, err := s.mastery.UpdateByOutcome(ctx, word.ID, correct, entity.PolicyIncrementDecrement)
	if err != nil {
		return err
	}
	s.result = &WritingResult{WordID: word.ID, Correct: correct, Skipped: skipped, Mistakes: s.mistakes, Change: change}
	s.summary.Total++
	if correct {
		s.summary.Correct++
	}
	return nil
}

func (s *WritingSession) prepare() {
	s.result = nil
	s.done = 0
	s.mistakes = 0
	s.chars = nil
	if !s.Completed() {
		s.chars = s.words[s.index].Characters()
	}
}
