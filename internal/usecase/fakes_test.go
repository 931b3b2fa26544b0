package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eslsoft/hskdeck/internal/entity"
)

var fixedNow = time.Date(2025, 3, 3, 22, 6, 7, 0, time.UTC)

type fakeMasteryRepo struct {
	mu      sync.RWMutex
	records map[string]entity.MasteryRecord
	sets    int
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{records: make(map[string]entity.MasteryRecord)}
}

func (r *fakeMasteryRepo) GetAll(context.Context) map[string]entity.MasteryRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]entity.MasteryRecord, len(r.records))
	for k, v := range r.records {
		out[k] = v
	}
	return out
}

func (r *fakeMasteryRepo) Get(_ context.Context, wordID string) (entity.MasteryRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[wordID]
	return rec, ok
}

func (r *fakeMasteryRepo) SetMastery(_ context.Context, wordID string, level entity.MasteryLevel) entity.MasteryRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := entity.MasteryRecord{WordID: wordID, Level: entity.ClampMastery(int(level)), LastReviewed: fixedNow}
	r.records[wordID] = rec
	r.sets++
	return rec
}

func (r *fakeMasteryRepo) ResetAll(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]entity.MasteryRecord)
}

func (r *fakeMasteryRepo) seed(id string, level entity.MasteryLevel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[id] = entity.MasteryRecord{WordID: id, Level: level, LastReviewed: fixedNow}
}

type fakeQuizProgressRepo struct {
	mu    sync.RWMutex
	saved map[int]entity.QuizProgress
	saves []entity.QuizProgress
}

func newFakeQuizProgressRepo() *fakeQuizProgressRepo {
	return &fakeQuizProgressRepo{saved: make(map[int]entity.QuizProgress)}
}

func (r *fakeQuizProgressRepo) Save(_ context.Context, level int, progress entity.QuizProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved[level] = progress
	r.saves = append(r.saves, progress)
}

func (r *fakeQuizProgressRepo) Load(context.Context) map[int]entity.QuizProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int]entity.QuizProgress, len(r.saved))
	for k, v := range r.saved {
		out[k] = v
	}
	return out
}

func (r *fakeQuizProgressRepo) Reset(_ context.Context, level int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saved, level)
}

type fakeCatalog struct {
	levels map[int][]entity.VocabEntry
}

func newFakeCatalog(words ...entity.VocabEntry) *fakeCatalog {
	c := &fakeCatalog{levels: make(map[int][]entity.VocabEntry)}
	for _, w := range words {
		c.levels[w.Level] = append(c.levels[w.Level], w)
	}
	return c
}

func (c *fakeCatalog) Levels() []int { return entity.Levels() }

func (c *fakeCatalog) ByLevel(level int) []entity.VocabEntry {
	return append([]entity.VocabEntry(nil), c.levels[level]...)
}

func (c *fakeCatalog) All() []entity.VocabEntry {
	var all []entity.VocabEntry
	levels := make([]int, 0, len(c.levels))
	for l := range c.levels {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	for _, l := range levels {
		all = append(all, c.levels[l]...)
	}
	return all
}

func (c *fakeCatalog) FindByID(id string) (entity.VocabEntry, bool) {
	for _, words := range c.levels {
		for _, w := range words {
			if w.ID == id {
				return w, true
			}
		}
	}
	return entity.VocabEntry{}, false
}

func (c *fakeCatalog) CountByLevel(level int) int { return len(c.levels[level]) }

func word(level, n int, hanzi, pinyin string, translations ...string) entity.VocabEntry {
	return entity.VocabEntry{
		ID:           entity.MakeVocabID(level, n),
		Hanzi:        hanzi,
		Pinyin:       pinyin,
		Translations: translations,
		Level:        level,
	}
}

func level1Words() []entity.VocabEntry {
	return []entity.VocabEntry{
		word(1, 1, "爱", "ài", "Yêu"),
		word(1, 2, "八", "bā", "Số tám"),
		word(1, 3, "爸爸", "bàba", "Bố", "Cha"),
		word(1, 4, "杯子", "bēizi", "Cái cốc"),
		word(1, 5, "北京", "Běijīng", "Bắc Kinh"),
	}
}
