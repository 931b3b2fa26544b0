package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
	"github.com/eslsoft/hskdeck/pkg/filterexpr"
)

// LearnedWordRepository joins the catalog with mastery records for browsing.
type LearnedWordRepository struct {
	catalog repository.Catalog
	mastery repository.MasteryRepository
}

func NewLearnedWordRepository(catalog repository.Catalog, mastery repository.MasteryRepository) repository.LearnedWordRepository {
	return &LearnedWordRepository{catalog: catalog, mastery: mastery}
}

type listLearnedWordsParams struct {
	Level          *int
	LevelMin       *int
	LevelMax       *int
	Hanzi          *string
	HanziPrefix    *string
	PinyinPrefix   *string
	Keyword        *string
	IDs            []string
	Mastery        *int
	MasteryMin     *int
	MasteryMax     *int
	ReviewedAfter  *time.Time
	ReviewedBefore *time.Time
	OrderBy        []filterexpr.OrderKey
}

// positioned keeps a word's catalog position for the default ordering.
type positioned struct {
	entity.LearnedWord
	pos int
}

func (r *LearnedWordRepository) List(ctx context.Context, query *repository.ListVocabQuery) ([]entity.LearnedWord, int, error) {
	var params listLearnedWordsParams
	if err := filterexpr.Bind(query, &params, listLearnedWordsSchema); err != nil {
		return nil, 0, err
	}

	records := r.mastery.GetAll(ctx)
	rows := make([]positioned, 0)
	for i, e := range r.catalog.All() {
		if query.Level != 0 && e.Level != query.Level {
			continue
		}
		rec, ok := records[e.ID]
		rows = append(rows, positioned{LearnedWord: entity.JoinLearnedWord(e, rec, ok), pos: i})
	}

	rows = lo.Filter(rows, func(row positioned, _ int) bool {
		return params.matches(row.LearnedWord)
	})
	applyLearnedWordOrdering(rows, params.OrderBy)

	start, end := query.Window(len(rows))
	results := lo.Map(rows[start:end], func(row positioned, _ int) entity.LearnedWord {
		return row.LearnedWord
	})
	return results, len(rows), nil
}

func (r *LearnedWordRepository) GetByID(ctx context.Context, id string) (*entity.LearnedWord, error) {
	e, ok := r.catalog.FindByID(id)
	if !ok {
		return nil, entity.ErrWordNotFound
	}
	rec, found := r.mastery.Get(ctx, id)
	word := entity.JoinLearnedWord(e, rec, found)
	return &word, nil
}

func (p listLearnedWordsParams) matches(w entity.LearnedWord) bool {
	switch {
	case p.Level != nil && w.Level != *p.Level,
		p.LevelMin != nil && w.Level < *p.LevelMin,
		p.LevelMax != nil && w.Level > *p.LevelMax,
		p.Hanzi != nil && w.Hanzi != *p.Hanzi,
		p.HanziPrefix != nil && !strings.HasPrefix(w.Hanzi, *p.HanziPrefix),
		p.PinyinPrefix != nil && !strings.HasPrefix(strings.ToLower(w.Pinyin), strings.ToLower(*p.PinyinPrefix)),
		p.Keyword != nil && !w.MatchesKeyword(*p.Keyword),
		len(p.IDs) > 0 && !lo.Contains(p.IDs, w.ID),
		p.Mastery != nil && int(w.Mastery) != *p.Mastery,
		p.MasteryMin != nil && int(w.Mastery) < *p.MasteryMin,
		p.MasteryMax != nil && int(w.Mastery) > *p.MasteryMax:
		return false
	}
	if p.ReviewedAfter != nil && (!w.Reviewed() || w.LastReviewed.Before(*p.ReviewedAfter)) {
		return false
	}
	if p.ReviewedBefore != nil && (!w.Reviewed() || w.LastReviewed.After(*p.ReviewedBefore)) {
		return false
	}
	return true
}

func applyLearnedWordOrdering(rows []positioned, keys []filterexpr.OrderKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			c := compareBy(k.Key, rows[i], rows[j])
			if c == 0 {
				continue
			}
			// Unreviewed words stay last in either direction.
			if k.Key == "last_reviewed" && (!rows[i].Reviewed() || !rows[j].Reviewed()) {
				return c < 0
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareBy(key string, a, b positioned) int {
	switch key {
	case "position":
		return a.pos - b.pos
	case "level":
		return a.Level - b.Level
	case "pinyin":
		return strings.Compare(entity.FoldPinyin(a.Pinyin), entity.FoldPinyin(b.Pinyin))
	case "hanzi":
		return strings.Compare(a.Hanzi, b.Hanzi)
	case "mastery":
		return int(a.Mastery) - int(b.Mastery)
	case "last_reviewed":
		switch {
		case !a.Reviewed() && !b.Reviewed():
			return 0
		case !a.Reviewed():
			return 1
		case !b.Reviewed():
			return -1
		}
		return a.LastReviewed.Compare(*b.LastReviewed)
	default:
		return 0
	}
}
