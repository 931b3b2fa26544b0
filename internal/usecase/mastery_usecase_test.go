package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/hskdeck/internal/entity"
)

func TestMasteryUsecaseUpdateByOutcome(t *testing.T) {
	cases := []struct {
		name     string
		seed     *entity.MasteryLevel
		correct  bool
		policy   entity.Policy
		previous entity.MasteryLevel
		next     entity.MasteryLevel
	}{
		{"unreviewed correct writing", nil, true, entity.PolicyIncrementDecrement, entity.MasteryNew, entity.MasteryFamiliar},
		{"unreviewed miss writing", nil, false, entity.PolicyIncrementDecrement, entity.MasteryNew, entity.MasteryNew},
		{"known miss writing", levelPtr(entity.MasteryKnown), false, entity.PolicyIncrementDecrement, entity.MasteryKnown, entity.MasteryFamiliar},
		{"mastered correct writing", levelPtr(entity.MasteryMastered), true, entity.PolicyIncrementDecrement, entity.MasteryMastered, entity.MasteryMastered},
		{"mastered miss quiz", levelPtr(entity.MasteryMastered), false, entity.PolicyResetOnMiss, entity.MasteryMastered, entity.MasteryNew},
		{"known correct quiz", levelPtr(entity.MasteryKnown), true, entity.PolicyResetOnMiss, entity.MasteryKnown, entity.MasteryMastered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeMasteryRepo()
			if tc.seed != nil {
				repo.seed("w1", *tc.seed)
			}
			uc := NewMasteryUsecase(repo)
			change, err := uc.UpdateByOutcome(context.Background(), "w1", tc.correct, tc.policy)
			if err != nil {
				t.Fatalf("UpdateByOutcome returned error: %v", err)
			}
			if change.Previous != tc.previous || change.Next != tc.next {
				t.Fatalf("expected %d -> %d, got %d -> %d", tc.previous, tc.next, change.Previous, change.Next)
			}
			rec, ok := uc.Get(context.Background(), "w1")
			if !ok || rec.Level != tc.next || !rec.LastReviewed.Equal(fixedNow) {
				t.Fatalf("unexpected stored record %+v (found=%v)", rec, ok)
			}
		})
	}
}

func TestMasteryUsecaseUnknownPolicy(t *testing.T) {
	repo := newFakeMasteryRepo()
	uc := NewMasteryUsecase(repo)
	if _, err := uc.UpdateByOutcome(context.Background(), "w1", true, entity.Policy(42)); !errors.Is(err, entity.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
	if repo.sets != 0 {
		t.Fatalf("expected no writes, got %d", repo.sets)
	}
}

func TestMasteryUsecaseResetAll(t *testing.T) {
	repo := newFakeMasteryRepo()
	uc := NewMasteryUsecase(repo)
	ctx := context.Background()
	uc.SetMastery(ctx, "w1", entity.MasteryKnown)
	uc.ResetAll(ctx)
	uc.ResetAll(ctx)
	if got := uc.GetAll(ctx); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func levelPtr(l entity.MasteryLevel) *entity.MasteryLevel { return &l }
