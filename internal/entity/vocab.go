package entity

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catalog levels are fixed HSK tiers.
const (
	MinLevel = 1
	MaxLevel = 6
)

// Levels returns every HSK level in ascending order.
func Levels() []int {
	levels := make([]int, 0, MaxLevel-MinLevel+1)
	for level := MinLevel; level <= MaxLevel; level++ {
		levels = append(levels, level)
	}
	return levels
}

// ValidLevel reports whether level is one of the HSK tiers.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Example is a sample sentence attached to a vocabulary entry.
type Example struct {
	Chinese    string `json:"chinese"`
	Pinyin     string `json:"pinyin"`
	Vietnamese string `json:"vietnamese"`
}

// VocabEntry is a single immutable catalog word.
type VocabEntry struct {
	ID           string    `json:"id"`
	Hanzi        string    `json:"hanzi"`
	Pinyin       string    `json:"pinyin"`
	Translations []string  `json:"translations"`
	Level        int       `json:"level"`
	Examples     []Example `json:"examples,omitempty"`
}

// PrimaryTranslation returns the first translation, which quizzes treat as the answer.
func (v VocabEntry) PrimaryTranslation() string {
	if len(v.Translations) == 0 {
		return ""
	}
	return v.Translations[0]
}

// HasTranslation reports whether text is one of the entry's translations.
func (v VocabEntry) HasTranslation(text string) bool {
	for _, t := range v.Translations {
		if t == text {
			return true
		}
	}
	return false
}

// Characters returns the distinct characters of the hanzi in order of first appearance.
func (v VocabEntry) Characters() []string {
	seen := make(map[rune]struct{}, len(v.Hanzi))
	chars := make([]string, 0, len(v.Hanzi))
	for _, r := range v.Hanzi {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		chars = append(chars, string(r))
	}
	return chars
}

// MakeVocabID builds the catalog id for the n-th (1-based) row of a level.
func MakeVocabID(level, n int) string {
	return strconv.Itoa(level) + "-" + strconv.Itoa(n)
}

// ParseVocabID splits a "{level}-{index}" id. ok is false for ids in any other shape.
func ParseVocabID(id string) (level, index int, ok bool) {
	head, tail, found := strings.Cut(id, "-")
	if !found {
		return 0, 0, false
	}
	level, err := strconv.Atoi(head)
	if err != nil {
		return 0, 0, false
	}
	index, err = strconv.Atoi(tail)
	if err != nil {
		return 0, 0, false
	}
	return level, index, true
}

// FoldPinyin lowercases pinyin and strips tone marks, so "Bàba" and "baba" compare equal.
func FoldPinyin(pinyin string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, pinyin)
	if err != nil {
		folded = pinyin
	}
	return strings.ToLower(folded)
}
