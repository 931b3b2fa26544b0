package vocabdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/infrastructure/logging"
)

func TestBundledCatalog(t *testing.T) {
	parts, err := LoadDir("")
	if err != nil {
		t.Fatalf("load bundled: %v", err)
	}
	for _, level := range entity.Levels() {
		entries := parts[level]
		if len(entries) < 4 {
			t.Fatalf("level %d: expected at least 4 words, got %d", level, len(entries))
		}
		seen := map[string]bool{}
		for i, e := range entries {
			if e.Level != level {
				t.Fatalf("level %d entry %s has level %d", level, e.ID, e.Level)
			}
			if e.ID != entity.MakeVocabID(level, i+1) {
				t.Fatalf("level %d: unexpected id %s at position %d", level, e.ID, i)
			}
			if seen[e.ID] {
				t.Fatalf("duplicate id %s", e.ID)
			}
			seen[e.ID] = true
			if e.Hanzi == "" || e.Pinyin == "" || e.PrimaryTranslation() == "" {
				t.Fatalf("incomplete entry %+v", e)
			}
		}
	}
}

func TestLoadMissingLevelIsEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"hsk2.json": {Data: []byte(`[{"id":"2-1","hanzi":"白","pinyin":"bái","translations":["trắng"],"level":2}]`)},
	}
	parts, err := Load(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(parts[1]) != 0 {
		t.Fatalf("expected empty level 1, got %v", parts[1])
	}
	if len(parts[2]) != 1 || parts[2][0].Hanzi != "白" {
		t.Fatalf("unexpected level 2: %+v", parts[2])
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	fsys := fstest.MapFS{"hsk1.json": {Data: []byte(`{`)}}
	if _, err := Load(fsys); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSheetLevel(t *testing.T) {
	cases := map[string]int{
		"HSK 1":      1,
		"hsk2":       2,
		"Hsk 3 từ":   3,
		"HSK6-extra": 6,
		"Sheet1":     0,
		"Notes":      0,
	}
	for name, want := range cases {
		if got := SheetLevel(name); got != want {
			t.Errorf("SheetLevel(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestImportWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hsk_vocab.xlsx")

	f := excelize.NewFile()
	if _, err := f.NewSheet("HSK 1"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet("hsk2"); err != nil {
		t.Fatal(err)
	}
	rows1 := [][]interface{}{
		{"STT", "Từ mới", "Phiên âm", "Giải thích", "Ví dụ", "Phiên âm"},
		{1, " 爱 ", "ài", "yêu", "我爱你", "wǒ ài nǐ"},
		{2, "", "bā", "số tám"},
		{3, "爸爸", "bàba", "bố"},
	}
	for i, row := range rows1 {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow("HSK 1", cellName, &r); err != nil {
			t.Fatal(err)
		}
	}
	rows2 := [][]interface{}{
		{"Hanzi", "Pinyin", "Meaning"},
		{"白", "bái", "trắng"},
	}
	for i, row := range rows2 {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow("hsk2", cellName, &r); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	_ = f.Close()

	parts, err := ImportWorkbook(path, logging.Discard())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(parts))
	}

	level1 := parts[1]
	if len(level1) != 2 {
		t.Fatalf("expected 2 level-1 words, got %+v", level1)
	}
	if level1[0].ID != "1-1" || level1[0].Hanzi != "爱" || level1[0].Pinyin != "ài" || level1[0].PrimaryTranslation() != "yêu" {
		t.Fatalf("unexpected first word %+v", level1[0])
	}
	// The row without hanzi still consumes an index.
	if level1[1].ID != "1-3" || level1[1].Hanzi != "爸爸" {
		t.Fatalf("unexpected second word %+v", level1[1])
	}
	if parts[2][0].ID != "2-1" || parts[2][0].PrimaryTranslation() != "trắng" || parts[2][0].Level != 2 {
		t.Fatalf("unexpected level 2 word %+v", parts[2][0])
	}

	out := filepath.Join(dir, "out")
	if err := WriteDir(out, parts); err != nil {
		t.Fatalf("write: %v", err)
	}
	reloaded, err := LoadDir(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded[1]) != 2 || len(reloaded[2]) != 1 || len(reloaded[3]) != 0 {
		t.Fatalf("unexpected reloaded sizes: %d %d %d", len(reloaded[1]), len(reloaded[2]), len(reloaded[3]))
	}

	data, err := os.ReadFile(filepath.Join(out, AllFile))
	if err != nil {
		t.Fatalf("read combined: %v", err)
	}
	var all []entity.VocabEntry
	if err := json.Unmarshal(data, &all); err != nil {
		t.Fatalf("decode combined: %v", err)
	}
	if len(all) != 3 || all[0].ID != "1-1" || all[2].ID != "2-1" {
		t.Fatalf("unexpected combined file %+v", all)
	}
}

func TestLoadDirNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hsk1.json")
	if err := os.WriteFile(file, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(file); err == nil {
		t.Fatal("expected error for file path")
	}
}
