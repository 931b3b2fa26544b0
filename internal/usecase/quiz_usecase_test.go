package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"

	"github.com/eslsoft/hskdeck/internal/entity"
)

type quizFixture struct {
	catalog  *fakeCatalog
	mastery  *fakeMasteryRepo
	progress *fakeQuizProgressRepo
	uc       QuizUsecase
}

func newQuizFixture(optionCount int, words ...entity.VocabEntry) *quizFixture {
	f := &quizFixture{
		catalog:  newFakeCatalog(words...),
		mastery:  newFakeMasteryRepo(),
		progress: newFakeQuizProgressRepo(),
	}
	f.uc = NewQuizUsecase(f.catalog, NewMasteryUsecase(f.mastery), NewStatsUsecase(f.catalog, f.mastery, false), f.progress, optionCount)
	return f
}

func wrongOption(t *testing.T, s *QuizSession) string {
	t.Helper()
	current, _ := s.Current()
	for _, o := range s.Options() {
		if !current.HasTranslation(o) {
			return o
		}
	}
	t.Fatal("no wrong option available")
	return ""
}

func TestQuizStartErrors(t *testing.T) {
	f := newQuizFixture(4, level1Words()...)
	if _, err := f.uc.Start(context.Background(), 9); !errors.Is(err, entity.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := f.uc.Start(context.Background(), 2); !errors.Is(err, entity.ErrEmptyLevel) {
		t.Fatalf("expected ErrEmptyLevel, got %v", err)
	}
}

func TestQuizOptions(t *testing.T) {
	words := append(level1Words(),
		word(1, 6, "爸", "bà", "Bố"),
		word(1, 7, "杯", "bēi", "Cái cốc"),
	)
	for i := 0; i < 20; i++ {
		options := buildQuizOptions(words, words[2], 4)
		if len(options) != 4 {
			t.Fatalf("expected 4 options, got %v", options)
		}
		if len(lo.Uniq(options)) != len(options) {
			t.Fatalf("duplicate options %v", options)
		}
		if !lo.Contains(options, "Bố") || lo.Contains(options, "Cha") {
			t.Fatalf("unexpected options %v", options)
		}
	}

	few := buildQuizOptions(words[:2], words[0], 4)
	if len(few) != 2 || !lo.Contains(few, "Yêu") || !lo.Contains(few, "Số tám") {
		t.Fatalf("expected answer plus one distractor, got %v", few)
	}
}

func TestQuizAnswerCorrect(t *testing.T) {
	f := newQuizFixture(3, level1Words()...)
	ctx := context.Background()
	s, err := f.uc.Start(ctx, 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if s.Index() != 0 || s.Total() != 5 || s.Stats().New != 5 || len(s.Options()) != 3 {
		t.Fatalf("unexpected initial session index=%d total=%d stats=%+v", s.Index(), s.Total(), s.Stats())
	}

	if err := s.Next(ctx); !errors.Is(err, entity.ErrNotAnswered) {
		t.Fatalf("expected ErrNotAnswered, got %v", err)
	}

	res, err := s.Answer(ctx, "Yêu")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if !res.Correct || res.Change.Next != entity.MasteryFamiliar || s.Score() != 1 {
		t.Fatalf("unexpected answer %+v score=%d", res, s.Score())
	}
	if s.Stats().Familiar != 1 || s.Stats().New != 4 {
		t.Fatalf("expected refreshed stats, got %+v", s.Stats())
	}
	if _, err := s.Answer(ctx, "Yêu"); !errors.Is(err, entity.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}

	if err := s.Next(ctx); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	saved := f.progress.Load(ctx)[1]
	if saved.CurrentIndex != 1 || saved.TotalWords != 5 || saved.Level != 1 || saved.Stats.Familiar != 1 {
		t.Fatalf("unexpected saved progress %+v", saved)
	}
}

func TestQuizAnswerWrongResetsMastery(t *testing.T) {
	f := newQuizFixture(4, level1Words()...)
	f.mastery.seed("1-1", entity.MasteryMastered)
	ctx := context.Background()
	s, err := f.uc.Start(ctx, 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	res, err := s.Answer(ctx, wrongOption(t, s))
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if res.Correct || res.Expected != "Yêu" || res.Change.Previous != entity.MasteryMastered || res.Change.Next != entity.MasteryNew {
		t.Fatalf("unexpected answer %+v", res)
	}
	if s.Score() != 0 || s.Stats().Mastered != 0 {
		t.Fatalf("unexpected score %d stats %+v", s.Score(), s.Stats())
	}
	if last, ok := s.LastAnswer(); !ok || last.Correct {
		t.Fatalf("unexpected last answer %+v", last)
	}
}

func TestQuizAlternateTranslationIsCorrect(t *testing.T) {
	f := newQuizFixture(4, level1Words()...)
	f.progress.saved[1] = entity.QuizProgress{Level: 1, CurrentIndex: 2}
	s, err := f.uc.Start(context.Background(), 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	res, err := s.Answer(context.Background(), "Cha")
	if err != nil || !res.Correct || res.Expected != "Bố" {
		t.Fatalf("expected alternate translation to be accepted, got %+v err=%v", res, err)
	}
}

func TestQuizResume(t *testing.T) {
	cases := []struct {
		name  string
		saved int
		want  int
	}{
		{"in range", 3, 3},
		{"past the end", 5, 0},
		{"negative", -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuizFixture(4, level1Words()...)
			f.progress.saved[1] = entity.QuizProgress{Level: 1, CurrentIndex: tc.saved, TotalWords: 5}
			s, err := f.uc.Start(context.Background(), 1)
			if err != nil {
				t.Fatalf("Start returned error: %v", err)
			}
			if s.Index() != tc.want {
				t.Fatalf("expected index %d, got %d", tc.want, s.Index())
			}
		})
	}
}

func TestQuizResumeKeepsSavedStats(t *testing.T) {
	snapshot := entity.LevelStats{New: 1, Familiar: 2, Known: 1, Mastered: 1}
	cases := []struct {
		name  string
		saved int
		want  entity.LevelStats
	}{
		{"in range keeps snapshot", 2, snapshot},
		{"out of range recomputes", 9, entity.LevelStats{New: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuizFixture(4, level1Words()...)
			f.progress.saved[1] = entity.QuizProgress{Level: 1, CurrentIndex: tc.saved, TotalWords: 5, Stats: snapshot}
			s, err := f.uc.Start(context.Background(), 1)
			if err != nil {
				t.Fatalf("Start returned error: %v", err)
			}
			if s.Stats() != tc.want {
				t.Fatalf("expected stats %+v, got %+v", tc.want, s.Stats())
			}
		})
	}
}

func TestQuizCompletionAndRestart(t *testing.T) {
	words := level1Words()[:2]
	f := newQuizFixture(2, words...)
	f.progress.saved[3] = entity.QuizProgress{Level: 3, CurrentIndex: 4}
	ctx := context.Background()
	s, err := f.uc.Start(ctx, 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	for _, w := range words {
		if _, err := s.Answer(ctx, w.PrimaryTranslation()); err != nil {
			t.Fatalf("Answer returned error: %v", err)
		}
		if err := s.Next(ctx); err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
	}
	if !s.Completed() || s.Score() != 2 {
		t.Fatalf("expected completed session with score 2, got completed=%v score=%d", s.Completed(), s.Score())
	}
	if _, ok := s.Current(); ok {
		t.Fatal("completed session should have no current word")
	}
	if _, err := s.Answer(ctx, "Yêu"); !errors.Is(err, entity.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted, got %v", err)
	}

	s.Restart(ctx)
	if s.Completed() || s.Index() != 0 || s.Score() != 0 || len(s.Options()) != 2 {
		t.Fatalf("unexpected restarted session index=%d score=%d", s.Index(), s.Score())
	}
	if s.Stats().Familiar != 2 {
		t.Fatalf("expected stats recomputed from mastery, got %+v", s.Stats())
	}
	loaded := f.progress.Load(ctx)
	if _, ok := loaded[1]; ok {
		t.Fatalf("expected level 1 progress cleared, got %+v", loaded[1])
	}
	if loaded[3].CurrentIndex != 4 {
		t.Fatalf("expected other levels untouched, got %+v", loaded)
	}
}

func TestQuizResetProgress(t *testing.T) {
	f := newQuizFixture(4, level1Words()...)
	f.progress.saved[1] = entity.QuizProgress{Level: 1, CurrentIndex: 3}
	f.uc.ResetProgress(context.Background(), 1)
	s, err := f.uc.Start(context.Background(), 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if s.Index() != 0 {
		t.Fatalf("expected a fresh start, got index %d", s.Index())
	}
}
