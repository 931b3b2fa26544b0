package vocabdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/hskdeck/internal/entity"
)

// Header names recognised for each column, in priority order.
var (
	hanziHeaders   = []string{"Từ mới", "Chữ Hán", "Hanzi"}
	pinyinHeaders  = []string{"Phiên âm", "Pinyin"}
	meaningHeaders = []string{"Giải thích", "Nghĩa", "Meaning"}
)

// SheetLevel derives the HSK level from a sheet name such as "HSK 3" or "hsk3-words".
// It returns 0 for sheets that name no level.
func SheetLevel(name string) int {
	normalized := strings.ToUpper(strings.Join(strings.Fields(name), ""))
	for _, level := range entity.Levels() {
		if strings.Contains(normalized, fmt.Sprintf("HSK%d", level)) {
			return level
		}
	}
	return 0
}

// ImportWorkbook converts every HSK sheet of the workbook at path into catalog entries.
// A later sheet for the same level replaces an earlier one.
func ImportWorkbook(path string, logger logrus.FieldLogger) (Partitions, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	parts := make(Partitions)
	for _, sheet := range f.GetSheetList() {
		level := SheetLevel(sheet)
		if level == 0 {
			logger.WithField("sheet", sheet).Info("skipping sheet with unknown level")
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		entries := parseSheet(level, rows)
		if _, dup := parts[level]; dup {
			logger.WithFields(logrus.Fields{"sheet": sheet, "level": level}).Warn("sheet replaces earlier sheet for the same level")
		}
		parts[level] = entries
		logger.WithFields(logrus.Fields{"sheet": sheet, "level": level, "words": len(entries)}).Info("imported sheet")
	}
	return parts, nil
}

func parseSheet(level int, rows [][]string) []entity.VocabEntry {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]
	hanziCol := findColumn(header, hanziHeaders)
	pinyinCol := findColumn(header, pinyinHeaders)
	meaningCol := findColumn(header, meaningHeaders)

	var entries []entity.VocabEntry
	index := 0
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		index++
		hanzi := cell(row, hanziCol)
		if hanzi == "" {
			continue
		}
		entries = append(entries, entity.VocabEntry{
			ID:           entity.MakeVocabID(level, index),
			Hanzi:        hanzi,
			Pinyin:       cell(row, pinyinCol),
			Translations: []string{cell(row, meaningCol)},
			Level:        level,
		})
	}
	return entries
}

// findColumn returns the first column whose header equals the highest priority candidate
// present, or -1.
func findColumn(header []string, candidates []string) int {
	for _, want := range candidates {
		for i, h := range header {
			if strings.TrimSpace(h) == want {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteDir writes one file per level in parts plus the combined hsk_all.json.
func WriteDir(dir string, parts Partitions) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	levels := make([]int, 0, len(parts))
	for level := range parts {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	all := make([]entity.VocabEntry, 0)
	for _, level := range levels {
		entries := parts[level]
		if entries == nil {
			entries = []entity.VocabEntry{}
		}
		if err := writeJSON(filepath.Join(dir, LevelFile(level)), entries); err != nil {
			return err
		}
		all = append(all, entries...)
	}
	return writeJSON(filepath.Join(dir, AllFile), all)
}

func writeJSON(path string, entries []entity.VocabEntry) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
