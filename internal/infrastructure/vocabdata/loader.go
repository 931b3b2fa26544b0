// Package vocabdata reads and writes the hsk{N}.json vocabulary files.
package vocabdata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/eslsoft/hskdeck/internal/entity"
)

//go:embed data/*.json
var bundled embed.FS

// Partitions holds catalog entries keyed by HSK level, in file order.
type Partitions map[int][]entity.VocabEntry

// LevelFile is the file name holding a level's entries.
func LevelFile(level int) string {
	return fmt.Sprintf("hsk%d.json", level)
}

// AllFile is the combined file written next to the per-level files.
const AllFile = "hsk_all.json"

// Bundled returns the vocabulary shipped inside the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDir reads the level files under dir, or the bundled data when dir is empty.
func LoadDir(dir string) (Partitions, error) {
	if dir == "" {
		return Load(Bundled())
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads hsk1.json..hsk6.json from fsys. A missing file yields an empty level.
func Load(fsys fs.FS) (Partitions, error) {
	parts := make(Partitions, entity.MaxLevel)
	for _, level := range entity.Levels() {
		data, err := fs.ReadFile(fsys, LevelFile(level))
		if errors.Is(err, fs.ErrNotExist) {
			parts[level] = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", LevelFile(level), err)
		}
		var entries []entity.VocabEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decode %s: %w", LevelFile(level), err)
		}
		parts[level] = entries
	}
	return parts, nil
}
