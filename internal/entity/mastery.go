package entity

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// MasteryLevel is a word's learning progress on the flat 0..3 scale.
type MasteryLevel int

const (
	MasteryNew MasteryLevel = iota
	MasteryFamiliar
	MasteryKnown
	MasteryMastered
)

// ClampMastery bounds any integer into the valid mastery range.
func ClampMastery(level int) MasteryLevel {
	return MasteryLevel(lo.Clamp(level, int(MasteryNew), int(MasteryMastered)))
}

// Valid reports whether the level lies within [MasteryNew, MasteryMastered].
func (l MasteryLevel) Valid() bool {
	return l >= MasteryNew && l <= MasteryMastered
}

func (l MasteryLevel) String() string {
	switch l {
	case MasteryNew:
		return "new"
	case MasteryFamiliar:
		return "familiar"
	case MasteryKnown:
		return "known"
	case MasteryMastered:
		return "mastered"
	default:
		return fmt.Sprintf("mastery(%d)", int(l))
	}
}

// MasteryRecord is the persisted learning state of one word.
type MasteryRecord struct {
	WordID       string
	Level        MasteryLevel
	LastReviewed time.Time
}
