package repository

import (
	"fmt"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// Catalog is the in-memory vocabulary, partitioned by HSK level.
type Catalog struct {
	levels map[int][]entity.VocabEntry
	byID   map[string]entity.VocabEntry
	all    []entity.VocabEntry
}

// NewCatalog indexes the given partitions. It rejects ids that repeat anywhere in the
// catalog and entries whose level differs from the partition holding them.
func NewCatalog(parts map[int][]entity.VocabEntry) (*Catalog, error) {
	c := &Catalog{
		levels: make(map[int][]entity.VocabEntry, entity.MaxLevel),
		byID:   make(map[string]entity.VocabEntry),
	}
	for _, level := range entity.Levels() {
		entries := parts[level]
		for _, e := range entries {
			if e.Level != level {
				return nil, fmt.Errorf("%w: %s has level %d in hsk%d", entity.ErrLevelMismatch, e.ID, e.Level, level)
			}
			if _, dup := c.byID[e.ID]; dup {
				return nil, fmt.Errorf("%w: %s", entity.ErrDuplicateWordID, e.ID)
			}
			c.byID[e.ID] = e
		}
		c.levels[level] = entries
		c.all = append(c.all, entries...)
	}
	for level := range parts {
		if !entity.ValidLevel(level) {
			return nil, fmt.Errorf("%w: %d", entity.ErrInvalidLevel, level)
		}
	}
	return c, nil
}

var _ repository.Catalog = (*Catalog)(nil)

func (c *Catalog) Levels() []int { return entity.Levels() }

// ByLevel returns a copy of the level's entries in file order; unknown levels are empty.
func (c *Catalog) ByLevel(level int) []entity.VocabEntry {
	return append([]entity.VocabEntry(nil), c.levels[level]...)
}

func (c *Catalog) All() []entity.VocabEntry {
	return append([]entity.VocabEntry(nil), c.all...)
}

func (c *Catalog) FindByID(id string) (entity.VocabEntry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

func (c *Catalog) CountByLevel(level int) int {
	return len(c.levels[level])
}
