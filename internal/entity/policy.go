package entity

import "fmt"

// Policy selects how an answer outcome moves a word's mastery level.
// Screens pick one explicitly: quizzes punish misses, writing practice is gentler.
type Policy int

const (
	// PolicyIncrementDecrement steps up on a correct answer and down on a miss.
	PolicyIncrementDecrement Policy = iota + 1
	// PolicyResetOnMiss steps up on a correct answer and drops to new on a miss.
	PolicyResetOnMiss
)

func (p Policy) String() string {
	switch p {
	case PolicyIncrementDecrement:
		return "increment_decrement"
	case PolicyResetOnMiss:
		return "reset_on_miss"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Next computes the level after an answer. hasRecord is false when the word was never
// reviewed; current is then ignored and treated as MasteryNew.
func (p Policy) Next(current MasteryLevel, hasRecord, correct bool) (MasteryLevel, error) {
	if !hasRecord {
		current = MasteryNew
	}
	switch p {
	case PolicyIncrementDecrement:
		return IncrementDecrement(current, hasRecord, correct), nil
	case PolicyResetOnMiss:
		return ResetOnMiss(current, correct), nil
	default:
		return current, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
}

// IncrementDecrement moves one step up on correct and one step down on a miss.
// A word without a record lands on familiar when correct and new otherwise.
func IncrementDecrement(current MasteryLevel, hasRecord, correct bool) MasteryLevel {
	if !hasRecord {
		if correct {
			return MasteryFamiliar
		}
		return MasteryNew
	}
	if correct {
		return ClampMastery(int(current) + 1)
	}
	return ClampMastery(int(current) - 1)
}

// ResetOnMiss moves one step up on correct and back to new on any miss.
func ResetOnMiss(current MasteryLevel, correct bool) MasteryLevel {
	if !correct {
		return MasteryNew
	}
	return ClampMastery(int(current) + 1)
}
