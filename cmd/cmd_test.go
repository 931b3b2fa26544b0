package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/infrastructure/vocabdata"
)

func Test_normalizeKeys(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{" ", ""}, nil},
		{[]string{" User_Progress ", "quiz_progress"}, []string{"user_progress", "quiz_progress"}},
	}
	for _, c := range cases {
		got := normalizeKeys(c.in)
		if strings.Join(got, ",") != strings.Join(c.want, ",") || (got == nil) != (c.want == nil) {
			t.Fatalf("%q -> got %q want %q", c.in, got, c.want)
		}
	}
}

func Test_defaultExportFilename(t *testing.T) {
	plain := defaultExportFilename(false)
	if !strings.HasPrefix(plain, "hskdeck-backup-") || !strings.HasSuffix(plain, ".jsonl") {
		t.Fatalf("unexpected filename %q", plain)
	}
	if gz := defaultExportFilename(true); !strings.HasSuffix(gz, ".jsonl.gz") {
		t.Fatalf("unexpected gzip filename %q", gz)
	}
}

func Test_levelFlag(t *testing.T) {
	for _, tc := range []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"", entity.MinLevel, false},
		{"6", 6, false},
		{"0", 0, true},
		{"7", 0, true},
	} {
		t.Run(tc.arg, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			addLevelFlag(cmd)
			if tc.arg != "" {
				if err := cmd.Flags().Set("level", tc.arg); err != nil {
					t.Fatalf("set flag: %v", err)
				}
			}
			got, err := levelFlag(cmd)
			if tc.wantErr {
				if !errors.Is(err, entity.ErrInvalidLevel) {
					t.Fatalf("expected ErrInvalidLevel, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got (%d, %v) want %d", got, err, tc.want)
			}
		})
	}
}

func Test_writeWordTable(t *testing.T) {
	reviewed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	words := []entity.LearnedWord{
		{VocabEntry: entity.VocabEntry{ID: "1-1", Hanzi: "爱", Pinyin: "ài", Translations: []string{"Yêu"}, Level: 1}, Mastery: entity.MasteryKnown, LastReviewed: &reviewed},
		{VocabEntry: entity.VocabEntry{ID: "1-2", Hanzi: "八", Pinyin: "bā", Translations: []string{"Số tám"}, Level: 1}},
	}
	var buf bytes.Buffer
	writeWordTable(&buf, words)
	out := buf.String()
	for _, want := range []string{"Hanzi", "爱", "Số tám", "never", entity.MasteryKnown.String()} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func Test_importSummary(t *testing.T) {
	parts := vocabdata.Partitions{
		1: {{ID: "1-1"}, {ID: "1-2"}},
		3: {{ID: "3-1"}},
	}
	out := importSummary(parts)
	for _, want := range []string{"HSK 1: 2 words", "HSK 2: 0 words", "HSK 3: 1 words", "Total: 3 words"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
}
