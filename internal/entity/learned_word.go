package entity

import (
	"strings"
	"time"
)

// LearnedWord joins a catalog entry with the learner's mastery of it.
type LearnedWord struct {
	VocabEntry
	Mastery      MasteryLevel
	LastReviewed *time.Time
}

// Reviewed reports whether the word has a mastery record at all.
func (w LearnedWord) Reviewed() bool {
	return w.LastReviewed != nil
}

// MatchesKeyword reports whether keyword occurs in the hanzi, pinyin or any translation,
// ignoring case.
func (w LearnedWord) MatchesKeyword(keyword string) bool {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(w.Hanzi), needle) || strings.Contains(strings.ToLower(w.Pinyin), needle) {
		return true
	}
	for _, t := range w.Translations {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// JoinLearnedWord attaches a record (if any) to a catalog entry.
func JoinLearnedWord(entry VocabEntry, record MasteryRecord, ok bool) LearnedWord {
	w := LearnedWord{VocabEntry: entry}
	if !ok {
		return w
	}
	w.Mastery = record.Level
	reviewed := record.LastReviewed
	w.LastReviewed = &reviewed
	return w
}
