package entity

import (
	"errors"
	"testing"
	"time"
)

func TestIncrementDecrement(t *testing.T) {
	for c := MasteryNew; c <= MasteryMastered; c++ {
		up := IncrementDecrement(c, true, true)
		down := IncrementDecrement(c, true, false)
		if want := ClampMastery(int(c) + 1); up != want {
			t.Errorf("IncrementDecrement(%d, correct) = %d, want %d", c, up, want)
		}
		if want := ClampMastery(int(c) - 1); down != want {
			t.Errorf("IncrementDecrement(%d, miss) = %d, want %d", c, down, want)
		}
		if !up.Valid() || !down.Valid() {
			t.Errorf("level out of range for %d: %d %d", c, up, down)
		}
	}
	if got := IncrementDecrement(MasteryNew, false, true); got != MasteryFamiliar {
		t.Errorf("unreviewed correct = %d, want 1", got)
	}
	if got := IncrementDecrement(MasteryNew, false, false); got != MasteryNew {
		t.Errorf("unreviewed miss = %d, want 0", got)
	}
}

func TestResetOnMiss(t *testing.T) {
	cases := []struct {
		current MasteryLevel
		correct bool
		want    MasteryLevel
	}{
		{MasteryMastered, false, MasteryNew},
		{MasteryNew, true, MasteryFamiliar},
		{MasteryKnown, true, MasteryMastered},
		{MasteryMastered, true, MasteryMastered},
		{MasteryFamiliar, false, MasteryNew},
	}
	for _, tc := range cases {
		if got := ResetOnMiss(tc.current, tc.correct); got != tc.want {
			t.Errorf("ResetOnMiss(%d, %v) = %d, want %d", tc.current, tc.correct, got, tc.want)
		}
	}
}

func TestPolicyNext(t *testing.T) {
	// Without a record the stored level is ignored.
	got, err := PolicyResetOnMiss.Next(MasteryKnown, false, true)
	if err != nil || got != MasteryFamiliar {
		t.Fatalf("unexpected %d err=%v", got, err)
	}
	got, err = PolicyIncrementDecrement.Next(MasteryKnown, true, false)
	if err != nil || got != MasteryFamiliar {
		t.Fatalf("unexpected %d err=%v", got, err)
	}
	if _, err := Policy(0).Next(MasteryNew, true, true); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
	if PolicyResetOnMiss.String() != "reset_on_miss" {
		t.Fatalf("unexpected name %q", PolicyResetOnMiss.String())
	}
}

func TestLevelSummaryPercentage(t *testing.T) {
	cases := []struct {
		name    string
		summary LevelSummary
		want    int
	}{
		{"empty level", LevelSummary{Total: 0, LevelStats: LevelStats{Familiar: 3}}, 0},
		{"all learned", LevelSummary{Total: 10, LevelStats: LevelStats{Familiar: 5, Known: 5}}, 100},
		{"rounds half up", LevelSummary{Total: 8, LevelStats: LevelStats{Familiar: 1}}, 13},
		{"rounds down", LevelSummary{Total: 3, LevelStats: LevelStats{Known: 1}}, 33},
		{"clamped above", LevelSummary{Total: 2, LevelStats: LevelStats{Mastered: 5}}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.summary.Percentage(); got != tc.want {
				t.Fatalf("Percentage() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLevelStatsAdd(t *testing.T) {
	a := LevelStats{New: 6, Familiar: 2, Known: 1, Mastered: 1}
	b := LevelStats{New: 1, Mastered: 2}
	sum := a.Add(b)
	if sum != (LevelStats{New: 7, Familiar: 2, Known: 1, Mastered: 3}) {
		t.Fatalf("unexpected sum %+v", sum)
	}
	if a.Learned() != 4 {
		t.Fatalf("expected 4 learned, got %d", a.Learned())
	}
}

func TestVocabIDs(t *testing.T) {
	id := MakeVocabID(3, 12)
	if id != "3-12" {
		t.Fatalf("unexpected id %q", id)
	}
	level, index, ok := ParseVocabID(id)
	if !ok || level != 3 || index != 12 {
		t.Fatalf("unexpected parse %d %d %v", level, index, ok)
	}
	for _, bad := range []string{"", "12", "a-1", "1-b"} {
		if _, _, ok := ParseVocabID(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestVocabEntryHelpers(t *testing.T) {
	e := VocabEntry{Hanzi: "谢谢你", Translations: []string{"cảm ơn", "cám ơn"}}
	if e.PrimaryTranslation() != "cảm ơn" {
		t.Fatalf("unexpected primary %q", e.PrimaryTranslation())
	}
	if !e.HasTranslation("cám ơn") || e.HasTranslation("xin chào") {
		t.Fatal("HasTranslation mismatch")
	}
	chars := e.Characters()
	if len(chars) != 2 || chars[0] != "谢" || chars[1] != "你" {
		t.Fatalf("unexpected characters %v", chars)
	}
	if (VocabEntry{}).PrimaryTranslation() != "" {
		t.Fatal("expected empty primary translation")
	}
}

func TestFoldPinyin(t *testing.T) {
	cases := map[string]string{
		"Bàba":    "baba",
		"nǚ'ér":   "nu'er",
		"Běijīng": "beijing",
		"ai":      "ai",
	}
	for in, want := range cases {
		if got := FoldPinyin(in); got != want {
			t.Errorf("FoldPinyin(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLearnedWord(t *testing.T) {
	e := VocabEntry{ID: "1-1", Hanzi: "爱", Pinyin: "ài", Translations: []string{"Yêu"}}
	w := JoinLearnedWord(e, MasteryRecord{}, false)
	if w.Reviewed() || w.Mastery != MasteryNew {
		t.Fatalf("unexpected unreviewed word %+v", w)
	}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	w = JoinLearnedWord(e, MasteryRecord{WordID: "1-1", Level: MasteryKnown, LastReviewed: now}, true)
	if !w.Reviewed() || !w.LastReviewed.Equal(now) || w.Mastery != MasteryKnown {
		t.Fatalf("unexpected reviewed word %+v", w)
	}
	for _, kw := range []string{"", "爱", "ÀI", "yêu"} {
		if !w.MatchesKeyword(kw) {
			t.Errorf("expected keyword %q to match", kw)
		}
	}
	if w.MatchesKeyword("ghét") {
		t.Error("unexpected keyword match")
	}
}
