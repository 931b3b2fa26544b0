package entity

import "math"

// LevelStats counts words per mastery bucket. New is the remainder of the level's word
// count once learned words are subtracted, so it is not a bucket of explicit level-0 records.
type LevelStats struct {
	New      int `json:"new"`
	Familiar int `json:"familiar"`
	Known    int `json:"known"`
	Mastered int `json:"mastered"`
}

// Learned is the number of words above MasteryNew.
func (s LevelStats) Learned() int {
	return s.Familiar + s.Known + s.Mastered
}

// Add returns the bucket-wise sum of two stats values.
func (s LevelStats) Add(other LevelStats) LevelStats {
	return LevelStats{
		New:      s.New + other.New,
		Familiar: s.Familiar + other.Familiar,
		Known:    s.Known + other.Known,
		Mastered: s.Mastered + other.Mastered,
	}
}

// LevelSummary pairs a level's stats with its catalog size. Level is 0 for the global summary.
type LevelSummary struct {
	Level int `json:"level"`
	Total int `json:"total"`
	LevelStats
}

// Percentage is the rounded share of learned words, bounded to [0,100]. An empty level is 0%.
func (s LevelSummary) Percentage() int {
	if s.Total <= 0 {
		return 0
	}
	pct := int(math.Floor(100*float64(s.Learned())/float64(s.Total) + 0.5))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Dashboard is the per-level breakdown plus the sum over all levels.
type Dashboard struct {
	Levels  []LevelSummary `json:"levels"`
	Overall LevelSummary   `json:"overall"`
}
